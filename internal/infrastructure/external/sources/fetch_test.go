package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fisherypulse/councilpulse/pkg/config"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	return NewClient(&config.SyncConfig{
		RequestTimeout:    5 * time.Second,
		RetryMaxElapsed:   20 * time.Second,
		RequestsPerSecond: 1000,
		RequestBurst:      1000,
	})
}

func TestGet_SetsUserAgent(t *testing.T) {
	var gotAgent atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent.Store(r.Header.Get("User-Agent"))
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	if _, err := testClient(t).Get(context.Background(), ts.URL); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAgent.Load() != userAgent {
		t.Fatalf("expected user agent %q, got %q", userAgent, gotAgent.Load())
	}
}

func TestGet_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	client := testClient(t)
	body, err := client.Get(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("expected retries to recover, got %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("unexpected body %q", body)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	if _, err := testClient(t).Get(context.Background(), ts.URL); err == nil {
		t.Fatal("expected error on 404")
	}
	if calls.Load() != 1 {
		t.Fatalf("404 should not be retried, got %d attempts", calls.Load())
	}
}

func TestGetJSON_ParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	var out map[string]interface{}
	if _, err := testClient(t).GetJSON(context.Background(), ts.URL, &out); err == nil {
		t.Fatal("expected parse error")
	}
}
