package tags

import (
	"strconv"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/panmx/qqtag/internal/model"
)

// writeFlac rebuilds the vorbis-comment block and replaces all picture
// blocks with a single front cover. Other metadata blocks are preserved.
func writeFlac(path string, meta *model.TrackMetadata, sig string, cover []byte) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return err
	}

	var kept []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment && block.Type != flac.Picture {
			kept = append(kept, block)
		}
	}
	f.Meta = kept

	cmt := flacvorbis.New()
	fields := []struct{ key, value string }{
		{flacvorbis.FIELD_TITLE, meta.Title},
		{flacvorbis.FIELD_ARTIST, meta.Artist},
		{flacvorbis.FIELD_ALBUM, meta.Album},
		{flacvorbis.FIELD_TRACKNUMBER, strconv.Itoa(meta.TrackNumber)},
		{"COMMENT", sig},
	}
	for _, field := range fields {
		if err := cmt.Add(field.key, field.value); err != nil {
			return err
		}
	}
	cmtBlock := cmt.Marshal()
	f.Meta = append(f.Meta, &cmtBlock)

	if len(cover) > 0 {
		pic, err := flacpicture.NewFromImageData(
			flacpicture.PictureTypeFrontCover, "Cover", cover, "image/jpeg")
		if err != nil {
			return err
		}
		picBlock := pic.Marshal()
		f.Meta = append(f.Meta, &picBlock)
	}

	return f.Save(path)
}
