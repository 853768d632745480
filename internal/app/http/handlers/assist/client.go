package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"costindex/go_backend/internal/app/config"
)

// Client issues requests against the chat-completions API. One outbound
// call per Complete; no retries.
type Client struct {
	Cfg  config.Config
	HTTP *http.Client
}

func NewClient(cfg config.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{Cfg: cfg, HTTP: httpClient}
}

// Configured reports whether a completion credential is present.
func (c *Client) Configured() bool {
	return c.Cfg.OpenAIAPIKey != ""
}

func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	payload := chatCompletionRequest{
		Model:       c.Cfg.OpenAIModel,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONObject {
		payload.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	urlStr := strings.TrimRight(c.Cfg.OpenAIBaseURL, "/") + "/v1/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.Cfg.OpenAIAPIKey)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", &UpstreamError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	// Empty content is not an error here: free-text interpretation
	// substitutes a fallback, json interpretation rejects it.
	return out.Choices[0].Message.Content, nil
}
