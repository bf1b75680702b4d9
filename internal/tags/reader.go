// Package tags reads and writes audio container tags. Reading is uniform
// across containers via dhowden/tag; writing dispatches on the container
// kind because capabilities differ per format.
package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/panmx/qqtag/internal/model"
	"github.com/panmx/qqtag/internal/ui"
)

// ReadIdentity extracts (artist, title) from a file's embedded tags. Wav,
// aac, and unknown containers carry no readable tags and go straight to the
// filename heuristic, as does any file whose tags are missing or unreadable.
// Read errors are never fatal. Values are whitespace-trimmed.
func ReadIdentity(path string) (artist, title string) {
	filename := filepath.Base(path)
	switch model.KindOf(path) {
	case model.KindFlac, model.KindMp3, model.KindMp4, model.KindOgg:
	default:
		return IdentityFromFilename(filename)
	}

	f, err := os.Open(path)
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("读取文件标签失败 %s: %v", filename, err))
		return IdentityFromFilename(filename)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("读取文件标签失败 %s: %v", filename, err))
		return IdentityFromFilename(filename)
	}

	artist = strings.TrimSpace(meta.Artist())
	title = strings.TrimSpace(meta.Title())
	if artist == "" || title == "" {
		return IdentityFromFilename(filename)
	}
	return artist, title
}

// IdentityFromFilename derives (artist, title) from a filename stem by
// splitting on the first " - ". Without the separator the whole stem is the
// title and the artist is empty.
func IdentityFromFilename(filename string) (artist, title string) {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	if left, right, found := strings.Cut(stem, " - "); found {
		return strings.TrimSpace(left), strings.TrimSpace(right)
	}
	return "", strings.TrimSpace(stem)
}
