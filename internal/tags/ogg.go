package tags

import (
	"strconv"

	"go.senan.xyz/taglib"

	"github.com/panmx/qqtag/internal/model"
)

// writeOgg writes vorbis comments to an ogg container. Artwork embedding is
// not supported for ogg; text tags only.
func writeOgg(path string, meta *model.TrackMetadata, sig string) error {
	return taglib.WriteTags(path, map[string][]string{
		taglib.Title:       {meta.Title},
		taglib.Artist:      {meta.Artist},
		taglib.Album:       {meta.Album},
		taglib.TrackNumber: {strconv.Itoa(meta.TrackNumber)},
		taglib.Comment:     {sig},
	}, 0)
}
