package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTagsParsesStringSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "air fryer" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`["air fryer",["air fryer recipes","air fryer chicken"]]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	tags, err := c.Tags(context.Background(), "air fryer")
	if err != nil {
		t.Fatalf("Tags() error = %v", err)
	}
	if len(tags) != 2 || tags[0] != "air fryer recipes" || tags[1] != "air fryer chicken" {
		t.Fatalf("tags = %#v", tags)
	}
}

func TestTagsParsesNestedSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["tv",[["tv stand",0],["tv mount",0]]]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	tags, err := c.Tags(context.Background(), "tv")
	if err != nil {
		t.Fatalf("Tags() error = %v", err)
	}
	if len(tags) != 2 || tags[0] != "tv stand" || tags[1] != "tv mount" {
		t.Fatalf("tags = %#v", tags)
	}
}

func TestTagsRejectsUnexpectedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"nope"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	if _, err := c.Tags(context.Background(), "tv"); err == nil {
		t.Fatalf("Tags() expected error for object payload")
	}
}
