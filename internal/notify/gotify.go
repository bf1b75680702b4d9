// Package notify pushes the end-of-run summary to a Gotify server when one
// is configured. Without a server URL and token it stays inert.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	summaryTitle    = "qqtag 处理完成"
	summaryPriority = 4
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

// Notifier holds the Gotify connection details.
type Notifier struct {
	ServerURL string
	Token     string
}

// PushSummary sends the batch result counts as a Gotify message.
func (n *Notifier) PushSummary(ctx context.Context, succeeded, failed int) error {
	msg := fmt.Sprintf("成功: %d 个，失败: %d 个", succeeded, failed)
	return n.push(ctx, summaryTitle, msg, summaryPriority)
}

func (n *Notifier) push(ctx context.Context, title, message string, priority int) error {
	url := strings.TrimRight(n.ServerURL, "/") + "/message"

	body, err := json.Marshal(map[string]any{
		"title":    title,
		"message":  message,
		"priority": priority,
	})
	if err != nil {
		return fmt.Errorf("序列化通知失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("创建通知请求失败: %w", err)
	}
	req.Header.Set("X-Gotify-Token", n.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("发送通知失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("通知服务返回 HTTP %d", resp.StatusCode)
	}
	return nil
}

// BuildNotifier returns a summary-push function wired to the given Gotify
// server, or nil (disabling notifications) when url or token are empty.
func BuildNotifier(serverURL, token string) func(ctx context.Context, succeeded, failed int) error {
	if serverURL == "" || token == "" {
		return nil
	}
	n := &Notifier{ServerURL: serverURL, Token: token}
	return n.PushSummary
}
