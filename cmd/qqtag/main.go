package main

import (
	"context"
	"fmt"
	"os"

	"github.com/panmx/qqtag/internal/config"
	"github.com/panmx/qqtag/internal/helpers"
	"github.com/panmx/qqtag/internal/model"
	"github.com/panmx/qqtag/internal/notify"
	"github.com/panmx/qqtag/internal/qqapi"
	"github.com/panmx/qqtag/internal/tags"
	"github.com/panmx/qqtag/internal/ui"
	"github.com/panmx/qqtag/internal/worker"
)

func main() {
	if err := run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.ParseCfg()
	if err != nil {
		return err
	}
	if err := helpers.MakeDirs(cfg.SourceDir); err != nil {
		return fmt.Errorf("创建源目录失败: %w", err)
	}
	if err := helpers.MakeDirs(cfg.DoneDir); err != nil {
		return fmt.Errorf("创建完成目录失败: %w", err)
	}

	if config.LoadedConfigPath != "" {
		ui.PrintInfo("配置文件: " + config.LoadedConfigPath)
	}
	ui.PrintInfo("源目录: " + cfg.SourceDir)
	ui.PrintInfo("完成目录: " + cfg.DoneDir)

	client := qqapi.NewClient()
	writer := &tags.Writer{
		Signature:  model.Signature,
		FetchCover: client.FetchCover,
	}
	proc := &worker.Processor{
		API:       client,
		Writer:    writer,
		SourceDir: cfg.SourceDir,
		DoneDir:   cfg.DoneDir,
	}
	runner := &worker.Runner{
		Cfg:     cfg,
		Process: proc.Process,
		Notify:  notify.BuildNotifier(cfg.GotifyURL, cfg.GotifyToken),
	}

	// Per-file failures are reported in the summary and do not affect the
	// exit code; only a failed enumeration is fatal.
	_, err = runner.Run(context.Background())
	return err
}
