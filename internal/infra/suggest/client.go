package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client queries the public suggest API for search-term completions.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: baseURL, HTTP: httpClient}
}

// Tags returns suggestions for query. The API answers with an array shaped
// [query, [suggestion, ...]] where each suggestion is either a string or an
// array whose first element is the string.
func (c *Client) Tags(ctx context.Context, query string) ([]string, error) {
	urlStr := strings.TrimRight(c.BaseURL, "/") +
		"/complete/search?client=firefox&ds=yt&q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("suggest status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unexpected suggest payload: %v", err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("unexpected suggest payload: %d elements", len(payload))
	}

	var items []interface{}
	if err := json.Unmarshal(payload[1], &items); err != nil {
		return nil, fmt.Errorf("unexpected suggest payload: %v", err)
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			tags = append(tags, v)
		case []interface{}:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok {
					tags = append(tags, s)
				}
			}
		}
	}
	return tags, nil
}
