package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"costindex/go_backend/internal/app/config"
)

func testClient(srv *httptest.Server) *Client {
	return NewClient(config.Config{
		OpenAIBaseURL: srv.URL,
		OpenAIAPIKey:  "test-key",
		OpenAIModel:   "gpt-3.5-turbo",
	}, srv.Client())
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestCompleteSendsRequestShape(t *testing.T) {
	var got chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(completionBody("hi there")))
	}))
	defer srv.Close()

	c := testClient(srv)
	out, err := c.Complete(context.Background(), Request{
		Messages:   []Message{{Role: "user", Content: "hi"}},
		MaxTokens:  100,
		JSONObject: true,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out != "hi there" {
		t.Fatalf("Complete() = %q", out)
	}
	if got.Model != "gpt-3.5-turbo" {
		t.Fatalf("model = %q", got.Model)
	}
	if got.MaxTokens != 100 {
		t.Fatalf("max_tokens = %d", got.MaxTokens)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format = %#v", got.ResponseFormat)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv).Complete(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *UpstreamError", err)
	}
	if upstream.Status != http.StatusTooManyRequests {
		t.Fatalf("status = %d", upstream.Status)
	}
	if upstream.Message != "quota exceeded" {
		t.Fatalf("message = %q", upstream.Message)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Complete(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("error = %v, want ErrEmptyCompletion", err)
	}
}

func TestCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionBody("")))
	}))
	defer srv.Close()

	out, err := testClient(srv).Complete(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if out != "" {
		t.Fatalf("Complete() = %q, want empty content passed through", out)
	}
}

func TestCompleteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := testClient(srv)
	srv.Close()

	_, err := c.Complete(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
}
