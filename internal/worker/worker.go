// Package worker drives per-file tag enrichment and the batch run across an
// input directory.
package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/panmx/qqtag/internal/helpers"
	"github.com/panmx/qqtag/internal/model"
	"github.com/panmx/qqtag/internal/qqapi"
	"github.com/panmx/qqtag/internal/tags"
)

// Processor enriches one file end to end: read identity, search the catalog,
// resolve the track number, write tags, move to the done directory.
type Processor struct {
	API       *qqapi.Client
	Writer    *tags.Writer
	SourceDir string
	DoneDir   string
}

// Process runs the pipeline for one filename from the source directory and
// returns a structured outcome. All failures, including panics, are captured
// here; the batch never sees an error from a single file.
func (p *Processor) Process(ctx context.Context, filename string) (outcome model.Outcome) {
	outcome = model.Outcome{Filename: filename}
	defer func() {
		if r := recover(); r != nil {
			outcome = model.Outcome{
				Filename: filename,
				Reason:   fmt.Sprintf("处理异常: %v", r),
			}
		}
	}()

	path := filepath.Join(p.SourceDir, filename)

	artist, title := tags.ReadIdentity(path)
	query := strings.TrimSpace(artist + " " + title)
	if query == "" {
		query = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	meta := p.API.SearchSong(ctx, query)
	if meta == nil {
		outcome.Reason = "获取元信息失败"
		return outcome
	}

	tracklist := p.API.AlbumTracks(ctx, meta.AlbumMid)
	if n := qqapi.ResolveTrackNumber(tracklist, meta.SongMid, meta.Title); n > 0 {
		meta.TrackNumber = n
	} else if meta.TrackNumber <= 0 {
		meta.TrackNumber = 1
	}

	if err := p.Writer.WriteTags(ctx, path, meta); err != nil {
		outcome.Reason = err.Error()
		return outcome
	}

	if info, err := os.Stat(path); err == nil {
		outcome.Bytes = info.Size()
	}
	if err := helpers.MoveFile(path, filepath.Join(p.DoneDir, filename)); err != nil {
		outcome.Reason = fmt.Sprintf("移动文件失败: %v", err)
		return outcome
	}

	outcome.Success = true
	outcome.Meta = meta
	return outcome
}
