// Package remote talks to the list document endpoint over HTTP.
//
//	GET  {base}/items  -> JSON array of items
//	POST {base}/items  <- JSON array of items (full overwrite)
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/idilsaglam/bucket/internal/debug"
	"github.com/idilsaglam/bucket/internal/model"
)

const DefaultURL = "http://localhost:8000"

type Client struct {
	base string
	http *http.Client
}

// New returns a client for baseURL. A zero timeout means no client timeout;
// callers then rely on the request context.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) itemsURL() string {
	return c.base + "/items"
}

// FetchAll loads the sequence. A body that is not a JSON array of items is
// treated as an empty list; transport errors and non-2xx statuses are
// returned.
func (c *Client) FetchAll(ctx context.Context) ([]model.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.itemsURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	defer resp.Body.Close()
	debug.LogTiming("GET "+c.itemsURL(), time.Since(start))

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("get items: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return model.DecodeList(body), nil
}

// ReplaceAll posts the full sequence. The response body is ignored.
func (c *Client) ReplaceAll(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.itemsURL(), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post items: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	debug.LogTiming("POST "+c.itemsURL(), time.Since(start))

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("post items: %s", resp.Status)
	}
	return nil
}
