package model

// Config holds the user's configuration.
type Config struct {
	SourceDir   string `json:"sourceDir"`
	DoneDir     string `json:"doneDir"`
	Threads     int    `json:"threads"`
	GotifyURL   string `json:"gotifyUrl,omitempty"`
	GotifyToken string `json:"gotifyToken,omitempty"`
}

// Args holds CLI arguments parsed by go-arg.
type Args struct {
	Source  string `arg:"-s,--source" help:"Directory containing audio files to enrich."`
	Done    string `arg:"-d,--done" help:"Destination directory for successfully processed files."`
	Threads int    `arg:"-t,--threads" default:"-1" help:"Worker pool size (default: 5)."`
}

// TrackMetadata is the canonical metadata resolved for one song from the
// catalog search endpoint, plus the negotiated cover.
type TrackMetadata struct {
	Title       string
	Artist      string
	Album       string
	AlbumMid    string
	SongMid     string
	TrackNumber int
	CoverURL    string
	CoverSize   string
}

// TrackEntry is one element of an album's track list. Track numbers are the
// 1-based positions of entries in the list.
type TrackEntry struct {
	SongMid string `json:"songmid"`
	Name    string `json:"name"`
}

// CoverChoice is the result of cover-size negotiation for one album.
// Size is the edge length embedded in the URL ("1500", "800", "500", "300"),
// or "0" when no usable cover was found (URL is empty then).
type CoverChoice struct {
	URL  string
	Size string
}

// Outcome is the per-file result surfaced from the worker to the runner.
// Exactly one of Meta/Reason is meaningful depending on Success. Bytes is
// the file size moved into the done tree, for the batch summary.
type Outcome struct {
	Filename string
	Success  bool
	Meta     *TrackMetadata
	Reason   string
	Bytes    int64
}
