package model

import (
	"path/filepath"
	"strings"
)

// Kind is the audio container kind, derived from the file extension.
// It decides which tag schema applies when reading and writing.
type Kind int

const (
	KindOther Kind = iota
	KindFlac
	KindMp3
	KindMp4
	KindOgg
	KindWav
	KindAac
)

// KindOf derives the container kind from a path's extension,
// case-insensitively. Both .m4a and .mp4 map to KindMp4.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".flac":
		return KindFlac
	case ".mp3":
		return KindMp3
	case ".m4a", ".mp4":
		return KindMp4
	case ".ogg":
		return KindOgg
	case ".wav":
		return KindWav
	case ".aac":
		return KindAac
	default:
		return KindOther
	}
}

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFlac:
		return "flac"
	case KindMp3:
		return "mp3"
	case KindMp4:
		return "mp4"
	case KindOgg:
		return "ogg"
	case KindWav:
		return "wav"
	case KindAac:
		return "aac"
	default:
		return "other"
	}
}
