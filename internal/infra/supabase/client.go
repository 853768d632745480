package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the hosted auth/database service over its REST surface.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: baseURL, APIKey: apiKey, HTTP: httpClient}
}

func (c *Client) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        AuthUser `json:"user"`
}

type WaitlistEntry struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Provider  string `json:"provider"`
	SubStatus bool   `json:"sub_status"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/signup", body, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return Session{}, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", body, nil)
	if err != nil {
		return Session{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Session{}, statusError(resp)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *Client) WaitlistContains(ctx context.Context, name, email string) (bool, error) {
	values := url.Values{}
	values.Set("select", "name,email")
	values.Set("name", "eq."+name)
	values.Set("email", "eq."+email)

	resp, err := c.do(ctx, http.MethodGet, "/rest/v1/waitlist?"+values.Encode(), nil, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, statusError(resp)
	}

	var rows []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (c *Client) InsertWaitlist(ctx context.Context, entry WaitlistEntry) error {
	body, err := json.Marshal([]WaitlistEntry{entry})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/rest/v1/waitlist", body, map[string]string{
		"Prefer": "return=minimal",
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

// Ping issues a minimal select to verify the database is reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/rest/v1/waitlist?select=id&limit=1", nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, headers map[string]string) (*http.Response, error) {
	urlStr := strings.TrimRight(c.BaseURL, "/") + path
	if !strings.HasPrefix(urlStr, "http://") && !strings.HasPrefix(urlStr, "https://") {
		return nil, fmt.Errorf("invalid supabase url")
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.HTTP.Do(req)
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}
