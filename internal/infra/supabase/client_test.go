package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.String())
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Errorf("apikey header = %q", r.Header.Get("apikey"))
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "a@b.c" {
			t.Errorf("email = %q", body["email"])
		}
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer","user":{"id":"u1","email":"a@b.c"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", srv.Client())
	session, err := c.SignInWithPassword(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("SignInWithPassword() error = %v", err)
	}
	if session.AccessToken != "tok" || session.User.ID != "u1" {
		t.Fatalf("session = %#v", session)
	}
}

func TestSignInPassesThroughUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", srv.Client())
	_, err := c.SignInWithPassword(context.Background(), "a@b.c", "wrong")
	if err == nil || !strings.Contains(err.Error(), "invalid_grant") {
		t.Fatalf("error = %v, want upstream message", err)
	}
}

func TestWaitlistContains(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/waitlist" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("email") != "eq.a@b.c" {
			t.Errorf("email filter = %q", r.URL.Query().Get("email"))
		}
		w.Write([]byte(`[{"name":"Ada","email":"a@b.c"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", srv.Client())
	exists, err := c.WaitlistContains(context.Background(), "Ada", "a@b.c")
	if err != nil {
		t.Fatalf("WaitlistContains() error = %v", err)
	}
	if !exists {
		t.Fatalf("WaitlistContains() = false, want true")
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "1" {
			t.Errorf("limit = %q", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key", srv.Client())
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}
