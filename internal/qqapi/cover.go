package qqapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/panmx/qqtag/internal/model"
)

// ChooseCover probes the album-art endpoint at descending resolutions and
// returns the first candidate that is a real cover. A probe is accepted when
// it answers 200 with a body over 10 KiB; smaller bodies are the endpoint's
// placeholder image and are rejected. Probe errors are skipped silently.
// When no size qualifies the choice is ("", "0").
//
// The choice is cached per albummid for the life of the process.
func (c *Client) ChooseCover(ctx context.Context, albumMid string) model.CoverChoice {
	c.mu.RLock()
	cached, ok := c.coverCache[albumMid]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	choice := model.CoverChoice{Size: "0"}
	for _, size := range model.CoverSizes {
		rawURL := fmt.Sprintf("%s/T002R%sx%sM000%s.jpg", c.coverBase, size, size, albumMid)
		if c.probeCover(ctx, rawURL) {
			choice = model.CoverChoice{URL: rawURL, Size: size}
			break
		}
	}

	c.mu.Lock()
	c.coverCache[albumMid] = choice
	c.mu.Unlock()
	return choice
}

func (c *Client) probeCover(ctx context.Context, rawURL string) bool {
	resp, cancel, err := c.get(ctx, rawURL, model.CoverProbeTimeout)
	if err != nil {
		return false
	}
	defer cancel()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}
	return len(body) > model.MinCoverBytes
}

// FetchCover downloads the negotiated cover image. Unlike the probes this is
// a hard failure when it errors: the caller decides whether to continue
// without artwork.
func (c *Client) FetchCover(ctx context.Context, coverURL string) ([]byte, error) {
	resp, cancel, err := c.get(ctx, coverURL, model.CoverDownloadTimeout)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("下载封面失败: HTTP %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
