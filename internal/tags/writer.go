package tags

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/panmx/qqtag/internal/model"
)

// Capability rejections. The reasons are part of the tool's output contract.
var (
	ErrWavUnsupported = errors.New("WAV 格式不支持标签写入")
	ErrAacUnsupported = errors.New("AAC 标签支持有限")
)

// Writer applies canonical tags and artwork to audio files. FetchCover
// downloads cover bytes for embedding; the runner wires it to the catalog
// client so the fixed headers and deadline apply.
type Writer struct {
	Signature  string
	FetchCover func(ctx context.Context, coverURL string) ([]byte, error)
}

// WriteTags writes title/artist/album/track/comment tags and, where the
// container supports it, the cover image to the file at path. A nil error
// means the file is fully tagged. The write is best effort: a failure
// mid-save may leave partial tag state on disk (no rollback).
func (w *Writer) WriteTags(ctx context.Context, path string, meta *model.TrackMetadata) error {
	kind := model.KindOf(path)
	switch kind {
	case model.KindWav:
		return ErrWavUnsupported
	case model.KindAac:
		return ErrAacUnsupported
	case model.KindFlac, model.KindMp3, model.KindMp4, model.KindOgg:
	default:
		return fmt.Errorf("不支持的文件类型: %s", strings.ToLower(filepath.Ext(path)))
	}

	var cover []byte
	if meta.CoverURL != "" && kind != model.KindOgg {
		data, err := w.FetchCover(ctx, meta.CoverURL)
		if err != nil {
			return fmt.Errorf("写入标签失败: %w", err)
		}
		cover = data
	}

	var err error
	switch kind {
	case model.KindFlac:
		err = writeFlac(path, meta, w.Signature, cover)
	case model.KindMp3:
		err = writeMp3(path, meta, w.Signature, cover)
	case model.KindMp4:
		err = writeMp4(path, meta, w.Signature, cover)
	case model.KindOgg:
		err = writeOgg(path, meta, w.Signature)
	}
	if err != nil {
		return fmt.Errorf("写入标签失败: %w", err)
	}
	return nil
}
