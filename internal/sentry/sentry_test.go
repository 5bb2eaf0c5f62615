package sentry

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestCaptureErrorIsDeliveredByFlush(t *testing.T) {
	var delivered atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/envelope/") || strings.Contains(r.URL.Path, "/store/") {
			delivered.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("SENTRY_DSN", fmt.Sprintf("http://key@%s/1", strings.TrimPrefix(srv.URL, "http://")))
	t.Setenv("SENTRY_ENVIRONMENT", "test")

	if err := Initialize("test"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	CaptureError(fmt.Errorf("boom"), "agent")

	// The transport is asynchronous, so the event only reliably reaches
	// the sink once Flush has drained it. Exiting without flushing loses it.
	Flush()

	if delivered.Load() == 0 {
		t.Fatal("captured event was never delivered; the transport must be flushed before exit")
	}
}

func TestInitializeWithoutDSNIsNoOp(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")
	if err := Initialize("test"); err != nil {
		t.Fatalf("Initialize without DSN should be a no-op, got %v", err)
	}
}
