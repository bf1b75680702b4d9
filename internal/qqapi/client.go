// Package qqapi is a client for the public QQ-music catalog endpoints with
// process-wide memoization. All lookups are best-effort: a miss or transport
// failure degrades the result instead of failing the caller.
package qqapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/panmx/qqtag/internal/model"
	"github.com/panmx/qqtag/internal/ui"
)

const (
	// UserAgent and Referer are required by the endpoints; requests without
	// them are rejected. Do not move these to config.
	UserAgent = "Mozilla/5.0"
	Referer   = "https://y.qq.com/"

	SearchURL = "https://c.y.qq.com/soso/fcgi-bin/client_search_cp"
	AlbumURL  = "https://c.y.qq.com/v8/fcg-bin/fcg_v8_album_info_cp.fcg"
	CoverBase = "https://y.qq.com/music/photo_new"
)

// Client calls the catalog endpoints through one shared http.Client and
// memoizes results for the life of the process. It is safe for concurrent
// use; concurrent misses for the same key may fetch twice, last writer wins.
type Client struct {
	httpClient *http.Client

	searchURL string
	albumURL  string
	coverBase string

	mu          sync.RWMutex
	searchCache map[string]model.TrackMetadata
	albumCache  map[string][]model.TrackEntry
	coverCache  map[string]model.CoverChoice
}

// NewClient creates a catalog client with the production endpoints.
func NewClient() *Client {
	return &Client{
		httpClient:  &http.Client{},
		searchURL:   SearchURL,
		albumURL:    AlbumURL,
		coverBase:   CoverBase,
		searchCache: make(map[string]model.TrackMetadata),
		albumCache:  make(map[string][]model.TrackEntry),
		coverCache:  make(map[string]model.CoverChoice),
	}
}

// SetEndpoints overrides the endpoint bases. Tests point these at httptest
// servers.
func (c *Client) SetEndpoints(searchURL, albumURL, coverBase string) {
	c.searchURL = searchURL
	c.albumURL = albumURL
	c.coverBase = coverBase
}

// get issues a GET with the fixed headers and a per-call deadline.
// Caller is responsible for closing the response body.
func (c *Client) get(ctx context.Context, rawURL string, timeout time.Duration) (*http.Response, context.CancelFunc, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	req.Header.Add("User-Agent", UserAgent)
	req.Header.Add("Referer", Referer)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return resp, cancel, nil
}

type searchResp struct {
	Data struct {
		Song struct {
			List []struct {
				SongName string `json:"songname"`
				Singer   []struct {
					Name string `json:"name"`
				} `json:"singer"`
				AlbumName  string `json:"albumname"`
				AlbumMid   string `json:"albummid"`
				SongMid    string `json:"songmid"`
				IndexAlbum int    `json:"index_album"`
			} `json:"list"`
		} `json:"song"`
	} `json:"data"`
}

// SearchSong resolves a query to track metadata via the search endpoint
// (single page, single result). The first hit is taken as authoritative; no
// similarity check against the query is performed. The negotiated cover is
// filled in before the result is cached. Returns nil on any transport, HTTP,
// decoding, or empty-result failure, after printing a one-line warning.
//
// Results are cached by the verbatim query string. The returned value is a
// copy: callers may overwrite TrackNumber without affecting the cache.
func (c *Client) SearchSong(ctx context.Context, query string) *model.TrackMetadata {
	c.mu.RLock()
	cached, ok := c.searchCache[query]
	c.mu.RUnlock()
	if ok {
		meta := cached
		return &meta
	}

	rawURL := fmt.Sprintf("%s?format=json&p=1&n=1&w=%s", c.searchURL, url.QueryEscape(query))
	resp, cancel, err := c.get(ctx, rawURL, model.SearchTimeout)
	if err != nil {
		ui.PrintError(fmt.Sprintf("搜索歌曲时出错 %s: %v", query, err))
		return nil
	}
	defer cancel()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ui.PrintError(fmt.Sprintf("搜索歌曲时出错 %s: HTTP %s", query, resp.Status))
		return nil
	}

	var obj searchResp
	if err = json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		ui.PrintError(fmt.Sprintf("搜索歌曲时出错 %s: %v", query, err))
		return nil
	}
	if len(obj.Data.Song.List) == 0 {
		ui.PrintWarning(fmt.Sprintf("未找到歌曲: %s", query))
		return nil
	}

	song := obj.Data.Song.List[0]
	cover := c.ChooseCover(ctx, song.AlbumMid)
	meta := model.TrackMetadata{
		Title:       song.SongName,
		Album:       song.AlbumName,
		AlbumMid:    song.AlbumMid,
		SongMid:     song.SongMid,
		TrackNumber: song.IndexAlbum,
		CoverURL:    cover.URL,
		CoverSize:   cover.Size,
	}
	if len(song.Singer) > 0 {
		meta.Artist = song.Singer[0].Name
	}

	c.mu.Lock()
	c.searchCache[query] = meta
	c.mu.Unlock()

	out := meta
	return &out
}

type albumResp struct {
	Data struct {
		List []model.TrackEntry `json:"list"`
	} `json:"data"`
}

// AlbumTracks returns the ordered track list for an album. Any failure is
// cached as an empty list so repeated lookups stay cheap; this method never
// reports an error.
func (c *Client) AlbumTracks(ctx context.Context, albumMid string) []model.TrackEntry {
	c.mu.RLock()
	cached, ok := c.albumCache[albumMid]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	tracks := c.fetchAlbumTracks(ctx, albumMid)

	c.mu.Lock()
	c.albumCache[albumMid] = tracks
	c.mu.Unlock()
	return tracks
}

func (c *Client) fetchAlbumTracks(ctx context.Context, albumMid string) []model.TrackEntry {
	rawURL := fmt.Sprintf("%s?albummid=%s&format=json", c.albumURL, url.QueryEscape(albumMid))
	resp, cancel, err := c.get(ctx, rawURL, model.AlbumTimeout)
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("获取专辑曲目失败 %s: %v", albumMid, err))
		return nil
	}
	defer cancel()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ui.PrintWarning(fmt.Sprintf("获取专辑曲目失败 %s: HTTP %s", albumMid, resp.Status))
		return nil
	}

	var obj albumResp
	if err = json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		ui.PrintWarning(fmt.Sprintf("获取专辑曲目失败 %s: %v", albumMid, err))
		return nil
	}
	return obj.Data.List
}

// ResolveTrackNumber finds the 1-based position of a song in an album track
// list, matching by songmid first, then by exact title. Returns 0 when
// neither matches (callers fall back to the catalog-reported index, then 1).
func ResolveTrackNumber(tracks []model.TrackEntry, songMid, title string) int {
	for i, t := range tracks {
		if t.SongMid == songMid {
			return i + 1
		}
	}
	for i, t := range tracks {
		if t.Name == title {
			return i + 1
		}
	}
	return 0
}
