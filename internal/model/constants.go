package model

import "time"

// Signature is embedded verbatim in the comment/description tag of every
// successfully processed file. The capitals are Mathematical Sans-Serif Bold
// code points, not ASCII — do not "fix" them.
const Signature = "Processed by 𝗣𝗔𝗡"

// DefaultThreads is the worker pool size when neither config nor CLI set one.
const DefaultThreads = 5

// Request deadlines per call class. Cover probes are cheaper than search and
// album lookups and get a tighter budget.
const (
	SearchTimeout        = 10 * time.Second
	AlbumTimeout         = 10 * time.Second
	CoverProbeTimeout    = 5 * time.Second
	CoverDownloadTimeout = 10 * time.Second
)

// MinCoverBytes is the acceptance threshold for a cover probe. The endpoint
// answers 200 with a small placeholder image when the album has no art at the
// requested resolution; anything at or under 10 KiB is treated as that
// placeholder.
const MinCoverBytes = 10 * 1024

// CoverSizes are the candidate square edge lengths, probed in this order.
var CoverSizes = []string{"1500", "800", "500", "300"}

// AudioExts is the set of extensions the runner picks up from the source
// directory (lowercased, with dot).
var AudioExts = map[string]bool{
	".flac": true,
	".mp3":  true,
	".m4a":  true,
	".mp4":  true,
	".wav":  true,
	".ogg":  true,
	".aac":  true,
}
