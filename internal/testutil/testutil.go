// Package testutil provides shared test helpers used across internal packages.
package testutil

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

// CaptureStdout captures stdout during fn() and returns the output as a string.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = orig
		_ = w.Close()
		_ = r.Close()
	}()

	fn()

	_ = w.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// WriteFLACFixture writes a structurally valid, empty FLAC file: the magic
// marker followed by a single zeroed STREAMINFO block flagged as the last
// metadata block, and a bare audio frame sync code. Tag libraries can parse
// and rewrite it; it is not playable audio.
func WriteFLACFixture(t *testing.T, dir, name string) string {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("fLaC")
	// Block header: last-block bit set, type 0 (STREAMINFO), 24-bit length 34.
	buf.Write([]byte{0x80, 0x00, 0x00, 0x22})
	buf.Write(make([]byte, 34))
	// Frame sync code: go-flac rejects files without it after the metadata.
	buf.Write([]byte{0xFF, 0xF8})

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write flac fixture: %v", err)
	}
	return path
}

// JPEGBytes returns a decodable JPEG image, zero-padded past minSize bytes.
// The FLAC picture block builder decodes covers to record their dimensions,
// so fixture covers have to be real images. Trailing padding is ignored by
// the decoder.
func JPEGBytes(t *testing.T, minSize int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatalf("failed to encode fixture jpeg: %v", err)
	}
	if pad := minSize - buf.Len(); pad > 0 {
		buf.Write(make([]byte, pad))
	}
	return buf.Bytes()
}

// WriteMP3Fixture writes a tagless file that the ID3v2 writer treats as an
// untagged MP3 (the tag is prepended on save).
func WriteMP3Fixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, 64), 0644); err != nil {
		t.Fatalf("failed to write mp3 fixture: %v", err)
	}
	return path
}
