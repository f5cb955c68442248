package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_PostSuccess(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	err := c.Post(context.Background(), "alice", srv.URL, map[string]any{"questionSet": "set"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if got["questionSet"] != "set" {
		t.Errorf("server received %v, want questionSet=set", got)
	}
}

func TestClient_PostServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	err := c.Post(context.Background(), "alice", srv.URL, map[string]any{})
	if err == nil {
		t.Fatal("Post to failing endpoint succeeded, want error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error = %v, want the endpoint status in the message", err)
	}
}

func TestClient_PostUnreachable(t *testing.T) {
	t.Parallel()

	c := NewClient(time.Second)
	if err := c.Post(context.Background(), "alice", "http://127.0.0.1:1/responses", map[string]any{}); err == nil {
		t.Error("Post to unreachable endpoint succeeded, want error")
	}
}

func TestClient_LastRequestWins(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var handled atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handled.Add(1) == 1 {
			// Hold the first request until the test releases it.
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(10 * time.Second)

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- c.Post(context.Background(), "alice", srv.URL, map[string]any{"n": 1})
	}()

	// Wait for the first request to reach the server before superseding it.
	for handled.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	if err := c.Post(context.Background(), "alice", srv.URL, map[string]any{"n": 2}); err != nil {
		t.Fatalf("second Post: %v", err)
	}
	close(release)

	if err := <-firstErr; err == nil {
		t.Error("superseded request succeeded, want cancellation error")
	}
}

func TestClient_DifferentKeysDoNotInterfere(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	if err := c.Post(context.Background(), "alice", srv.URL, map[string]any{}); err != nil {
		t.Errorf("Post alice: %v", err)
	}
	if err := c.Post(context.Background(), "bob", srv.URL, map[string]any{}); err != nil {
		t.Errorf("Post bob: %v", err)
	}
}
