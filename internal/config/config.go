// Package config resolves the runtime configuration from an optional
// config.json merged with CLI arguments. CLI flags win.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"

	"github.com/panmx/qqtag/internal/model"
)

// LoadedConfigPath tracks which config file was loaded, for diagnostics.
var LoadedConfigPath string

// ReadConfig loads config.json from the working directory or
// ~/.config/qqtag/config.json. A missing file is not an error; the zero
// Config is returned and flags supply everything.
func ReadConfig() (*model.Config, error) {
	configPaths := []string{"config.json"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(homeDir, ".config", "qqtag", "config.json"))
	}

	for _, path := range configPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("读取配置文件失败 %s: %w", path, err)
		}
		var obj model.Config
		if err = json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("解析配置文件失败 %s: %w", path, err)
		}
		LoadedConfigPath = path
		return &obj, nil
	}
	return &model.Config{}, nil
}

// ParseArgs parses CLI arguments using go-arg.
func ParseArgs() *model.Args {
	var args model.Args
	arg.MustParse(&args)
	return &args
}

// ParseCfg reads config, parses CLI args, and returns the resolved Config.
func ParseCfg() (*model.Config, error) {
	cfg, err := ReadConfig()
	if err != nil {
		return nil, err
	}
	args := ParseArgs()
	return mergeArgs(cfg, args)
}

// mergeArgs applies CLI overrides and validates the result.
func mergeArgs(cfg *model.Config, args *model.Args) (*model.Config, error) {
	if args.Source != "" {
		cfg.SourceDir = args.Source
	}
	if args.Done != "" {
		cfg.DoneDir = args.Done
	}
	if args.Threads != -1 {
		cfg.Threads = args.Threads
	}
	if cfg.Threads == 0 {
		cfg.Threads = model.DefaultThreads
	}

	if cfg.SourceDir == "" {
		return nil, errors.New("源目录未指定 (--source 或 config.json 中的 sourceDir)")
	}
	if cfg.DoneDir == "" {
		return nil, errors.New("完成目录未指定 (--done 或 config.json 中的 doneDir)")
	}
	if cfg.Threads < 1 {
		return nil, fmt.Errorf("线程数必须为正整数: %d", cfg.Threads)
	}
	return cfg, nil
}
