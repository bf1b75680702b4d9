package tags

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.senan.xyz/taglib"

	"github.com/panmx/qqtag/internal/model"
	"github.com/panmx/qqtag/internal/testutil"
)

// copyFixture copies a testdata audio file into a temp dir under the given
// name, so writes never touch the checked-in fixture.
func copyFixture(t *testing.T, src, dst string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", src))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), dst)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func testMeta() *model.TrackMetadata {
	return &model.TrackMetadata{
		Title:       "晴天",
		Artist:      "周杰伦",
		Album:       "叶惠美",
		TrackNumber: 2,
		CoverURL:    "https://y.gtimg.cn/music/photo_new/T002R1500x1500M000abc.jpg",
		CoverSize:   "1500",
	}
}

func fetchFixedCover(data []byte) func(context.Context, string) ([]byte, error) {
	return func(ctx context.Context, coverURL string) ([]byte, error) {
		return data, nil
	}
}

func fetchMustNotRun(t *testing.T) func(context.Context, string) ([]byte, error) {
	return func(ctx context.Context, coverURL string) ([]byte, error) {
		t.Fatal("cover fetch ran for a file that cannot embed one")
		return nil, nil
	}
}

func TestWriteTags_RejectsUnsupportedContainers(t *testing.T) {
	tests := []struct {
		filename   string
		wantErr    error
		wantReason string
	}{
		{"song.wav", ErrWavUnsupported, "WAV 格式不支持标签写入"},
		{"song.aac", ErrAacUnsupported, "AAC 标签支持有限"},
		{"song.txt", nil, "不支持的文件类型: .txt"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			content := []byte("original bytes")
			require.NoError(t, os.WriteFile(path, content, 0644))

			w := &Writer{Signature: model.Signature, FetchCover: fetchMustNotRun(t)}
			err := w.WriteTags(context.Background(), path, testMeta())
			require.Error(t, err)
			assert.Equal(t, tt.wantReason, err.Error())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			after, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.True(t, bytes.Equal(content, after), "rejected file must not be modified")
		})
	}
}

func TestWriteTags_CoverFetchFailureAborts(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFLACFixture(t, dir, "song.flac")

	fetchErr := errors.New("下载封面失败: HTTP 404 Not Found")
	w := &Writer{
		Signature: model.Signature,
		FetchCover: func(ctx context.Context, coverURL string) ([]byte, error) {
			return nil, fetchErr
		},
	}
	err := w.WriteTags(context.Background(), path, testMeta())
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
	assert.Contains(t, err.Error(), "写入标签失败")
}

func TestWriteTags_FlacRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFLACFixture(t, dir, "song.flac")
	cover := testutil.JPEGBytes(t, 0)

	w := &Writer{Signature: model.Signature, FetchCover: fetchFixedCover(cover)}
	require.NoError(t, w.WriteTags(context.Background(), path, testMeta()))

	f, err := flac.ParseFile(path)
	require.NoError(t, err)

	var cmt *flacvorbis.MetaDataBlockVorbisComment
	var pic *flacpicture.MetadataBlockPicture
	for _, block := range f.Meta {
		switch block.Type {
		case flac.VorbisComment:
			require.Nil(t, cmt, "expected exactly one vorbis-comment block")
			cmt, err = flacvorbis.ParseFromMetaDataBlock(*block)
			require.NoError(t, err)
		case flac.Picture:
			require.Nil(t, pic, "expected exactly one picture block")
			pic, err = flacpicture.ParseFromMetaDataBlock(*block)
			require.NoError(t, err)
		}
	}
	require.NotNil(t, cmt)
	require.NotNil(t, pic)

	get := func(key string) string {
		values, err := cmt.Get(key)
		require.NoError(t, err)
		require.Len(t, values, 1, "field %s", key)
		return values[0]
	}
	assert.Equal(t, "晴天", get(flacvorbis.FIELD_TITLE))
	assert.Equal(t, "周杰伦", get(flacvorbis.FIELD_ARTIST))
	assert.Equal(t, "叶惠美", get(flacvorbis.FIELD_ALBUM))
	assert.Equal(t, "2", get(flacvorbis.FIELD_TRACKNUMBER))
	assert.Equal(t, "Processed by 𝗣𝗔𝗡", get("COMMENT"))

	assert.Equal(t, "image/jpeg", pic.MIME)
	assert.Equal(t, flacpicture.PictureTypeFrontCover, pic.PictureType)
	assert.Equal(t, cover, pic.ImageData)
}

func TestWriteTags_FlacWithoutCoverSkipsPicture(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFLACFixture(t, dir, "song.flac")

	meta := testMeta()
	meta.CoverURL = ""
	meta.CoverSize = "0"

	w := &Writer{Signature: model.Signature, FetchCover: fetchMustNotRun(t)}
	require.NoError(t, w.WriteTags(context.Background(), path, meta))

	f, err := flac.ParseFile(path)
	require.NoError(t, err)
	for _, block := range f.Meta {
		assert.NotEqual(t, flac.Picture, block.Type, "no picture block expected without a cover")
	}
}

func TestWriteTags_M4aRoundTrip(t *testing.T) {
	path := copyFixture(t, "sample.m4a", "song.m4a")
	cover := testutil.JPEGBytes(t, 0)

	w := &Writer{Signature: model.Signature, FetchCover: fetchFixedCover(cover)}
	require.NoError(t, w.WriteTags(context.Background(), path, testMeta()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	m, err := tag.ReadFrom(f)
	require.NoError(t, err)

	assert.Equal(t, "晴天", m.Title())
	assert.Equal(t, "周杰伦", m.Artist())
	assert.Equal(t, "叶惠美", m.Album())
	n, _ := m.Track()
	assert.Equal(t, 2, n)

	pic := m.Picture()
	require.NotNil(t, pic)
	assert.Equal(t, cover, pic.Data)
}

func TestWriteTags_OggRoundTrip(t *testing.T) {
	path := copyFixture(t, "sample.ogg", "song.ogg")

	// Ogg takes text tags only; the cover must never be downloaded even
	// though the metadata names one.
	w := &Writer{Signature: model.Signature, FetchCover: fetchMustNotRun(t)}
	require.NoError(t, w.WriteTags(context.Background(), path, testMeta()))

	got, err := taglib.ReadTags(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"晴天"}, got[taglib.Title])
	assert.Equal(t, []string{"周杰伦"}, got[taglib.Artist])
	assert.Equal(t, []string{"叶惠美"}, got[taglib.Album])
	assert.Equal(t, []string{"2"}, got[taglib.TrackNumber])
	assert.Equal(t, []string{"Processed by 𝗣𝗔𝗡"}, got[taglib.Comment])
}

func TestWriteTags_Mp3RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteMP3Fixture(t, dir, "song.mp3")
	cover := testutil.JPEGBytes(t, 0)

	w := &Writer{Signature: model.Signature, FetchCover: fetchFixedCover(cover)}
	require.NoError(t, w.WriteTags(context.Background(), path, testMeta()))

	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer id3.Close()

	assert.Equal(t, "晴天", id3.Title())
	assert.Equal(t, "周杰伦", id3.Artist())
	assert.Equal(t, "叶惠美", id3.Album())
	assert.Equal(t, "2", id3.GetTextFrame(id3.CommonID("Track number/Position in set")).Text)

	comments := id3.GetFrames(id3.CommonID("Comments"))
	require.Len(t, comments, 1)
	comment, ok := comments[0].(id3v2.CommentFrame)
	require.True(t, ok)
	assert.Equal(t, "Processed by 𝗣𝗔𝗡", comment.Text)

	pictures := id3.GetFrames(id3.CommonID("Attached picture"))
	require.Len(t, pictures, 1)
	picture, ok := pictures[0].(id3v2.PictureFrame)
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", picture.MimeType)
	assert.Equal(t, cover, picture.Picture)
}
