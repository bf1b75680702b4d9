package tags

import (
	mp4tag "github.com/zhaarey/go-mp4tag"

	"github.com/panmx/qqtag/internal/model"
)

// writeMp4 writes the title/artist/album atoms, the track tuple (n, 0), the
// description atom, and a cover atom to an m4a/mp4 container.
func writeMp4(path string, meta *model.TrackMetadata, sig string, cover []byte) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return err
	}
	defer mp4.Close()

	t := &mp4tag.MP4Tags{
		Title:       meta.Title,
		Artist:      meta.Artist,
		Album:       meta.Album,
		TrackNumber: int16(meta.TrackNumber),
		Description: sig,
	}
	if len(cover) > 0 {
		t.Pictures = []*mp4tag.MP4Picture{{Data: cover}}
	}

	return mp4.Write(t, []string{})
}
