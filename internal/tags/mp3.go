package tags

import (
	"strconv"

	"github.com/bogem/id3v2/v2"

	"github.com/panmx/qqtag/internal/model"
)

// writeMp3 writes ID3v2 text frames, a COMM signature frame, and one APIC
// front-cover frame. Existing comment and picture frames are dropped first
// so the file ends up with exactly one of each.
func writeMp3(path string, meta *model.TrackMetadata, sig string, cover []byte) error {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer id3.Close()

	id3.SetDefaultEncoding(id3v2.EncodingUTF8)
	id3.SetTitle(meta.Title)
	id3.SetArtist(meta.Artist)
	id3.SetAlbum(meta.Album)

	trackID := id3.CommonID("Track number/Position in set")
	id3.DeleteFrames(trackID)
	id3.AddFrame(trackID, id3v2.TextFrame{
		Encoding: id3v2.EncodingUTF8,
		Text:     strconv.Itoa(meta.TrackNumber),
	})

	id3.DeleteFrames(id3.CommonID("Comments"))
	id3.AddCommentFrame(id3v2.CommentFrame{
		Encoding: id3v2.EncodingUTF8,
		Language: "eng",
		Text:     sig,
	})

	if len(cover) > 0 {
		id3.DeleteFrames(id3.CommonID("Attached picture"))
		id3.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     cover,
		})
	}

	return id3.Save()
}
