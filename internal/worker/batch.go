package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/panmx/qqtag/internal/model"
	"github.com/panmx/qqtag/internal/ui"
)

// Runner enumerates the source directory and fans files out to a bounded
// worker pool. Process is injectable so tests can stub the pipeline.
type Runner struct {
	Cfg     *model.Config
	Process func(ctx context.Context, filename string) model.Outcome

	// Notify pushes the final success/failure counts to a notification
	// service when set.
	Notify func(ctx context.Context, succeeded, failed int) error
}

// Run processes every audio file in the source directory and returns the
// aggregated outcomes. Per-file failures never abort the batch; the only
// error returned is a failure to enumerate the directory.
func (r *Runner) Run(ctx context.Context) ([]model.Outcome, error) {
	files, err := r.listAudioFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		ui.PrintError("没有找到可处理的音频文件")
		return nil, nil
	}

	threads := r.Cfg.Threads
	if threads < 1 {
		threads = model.DefaultThreads
	}

	total := len(files)
	ui.PrintMusic(fmt.Sprintf("开始处理 %d 个文件，使用 %d 个线程...", total, threads))
	start := time.Now()
	warningsBefore := ui.WarningCount()

	results := make(chan model.Outcome)
	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup
	for _, filename := range files {
		wg.Add(1)
		go func(filename string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results <- r.Process(ctx, filename)
		}(filename)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Single printing loop; (i/N) reflects completion order.
	outcomes := make([]model.Outcome, 0, total)
	var movedBytes int64
	i := 0
	for outcome := range results {
		i++
		if outcome.Success {
			movedBytes += outcome.Bytes
			fmt.Printf("%s[%s]%s (%d/%d) 已处理：%s (Track %d)\n",
				ui.ColorGreen, ui.SymbolCheck, ui.ColorReset,
				i, total, outcome.Filename, outcome.Meta.TrackNumber)
			if outcome.Meta.CoverSize != "0" {
				ui.PrintDetail(fmt.Sprintf("封面分辨率：%sx%s", outcome.Meta.CoverSize, outcome.Meta.CoverSize))
			}
			ui.PrintDetail("签名：" + model.Signature)
		} else {
			fmt.Printf("%s[%s]%s (%d/%d) 处理失败：%s - %s\n",
				ui.ColorRed, ui.SymbolCross, ui.ColorReset,
				i, total, outcome.Filename, outcome.Reason)
		}
		outcomes = append(outcomes, outcome)
	}

	r.printSummary(outcomes, movedBytes, time.Since(start), ui.WarningCount()-warningsBefore)
	r.sendSummary(ctx, outcomes)
	return outcomes, nil
}

// listAudioFiles enumerates the source directory non-recursively and keeps
// regular files with a known audio extension.
func (r *Runner) listAudioFiles() ([]string, error) {
	entries, err := os.ReadDir(r.Cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("读取源目录失败: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if model.AudioExts[ext] {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func (r *Runner) printSummary(outcomes []model.Outcome, movedBytes int64, elapsed time.Duration, warned int64) {
	succeeded, failed := tally(outcomes)

	fmt.Println()
	ui.PrintMusic("处理完成")
	fmt.Printf("⏱️ 总耗时: %.2f秒\n", elapsed.Seconds())
	fmt.Printf("📊 平均每个文件: %.2f秒\n", elapsed.Seconds()/float64(len(outcomes)))
	if movedBytes > 0 {
		fmt.Printf("📦 已移动: %s\n", humanize.Bytes(uint64(movedBytes)))
	}
	if warned > 0 {
		fmt.Printf("⚠️ 警告: %d 条\n", warned)
	}
	ui.PrintSuccess(fmt.Sprintf("成功: %d 个", succeeded))
	ui.PrintError(fmt.Sprintf("失败: %d 个", failed))

	if failed > 0 {
		fmt.Println("---- 失败详情 ----")
		for _, o := range outcomes {
			if !o.Success {
				fmt.Printf("  - %s ：%s\n", o.Filename, o.Reason)
			}
		}
	}
}

func (r *Runner) sendSummary(ctx context.Context, outcomes []model.Outcome) {
	if r.Notify == nil {
		return
	}
	succeeded, failed := tally(outcomes)
	if err := r.Notify(ctx, succeeded, failed); err != nil {
		ui.PrintWarning(fmt.Sprintf("推送通知失败: %v", err))
	}
}

func tally(outcomes []model.Outcome) (succeeded, failed int) {
	for _, o := range outcomes {
		if o.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
