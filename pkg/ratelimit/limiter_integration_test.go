//go:build integration

package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Sternrassler/go-webkit/internal/testutil"
	"github.com/Sternrassler/go-webkit/pkg/middleware"
	"github.com/rs/zerolog"
)

func TestLimiter_Integration_Allow(t *testing.T) {
	redisClient := testutil.StartRedis(t)
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	ctx := context.Background()

	l, err := NewLimiter(redisClient, Config{Limit: 3, Window: time.Minute}, logger)
	if err != nil {
		t.Fatalf("NewLimiter() error = %v", err)
	}
	fixed := time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	// Test 1: requests up to the limit are allowed
	for i := 1; i <= 3; i++ {
		allowed, state, err := l.Allow(ctx, "client-a")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if !allowed {
			t.Errorf("request %d should be allowed", i)
		}
		if state.Count != i {
			t.Errorf("state.Count = %d, want %d", state.Count, i)
		}
	}

	// Test 2: the next request is blocked
	allowed, state, err := l.Allow(ctx, "client-a")
	if err != nil {
		t.Fatalf("Allow() error = %v", err)
	}
	if allowed || !state.Exceeded() {
		t.Error("request over the limit should be blocked")
	}
	if !state.ResetAt.Equal(time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC)) {
		t.Errorf("ResetAt = %v, want end of window", state.ResetAt)
	}

	// Test 3: other clients have their own counter
	if allowed, _, _ := l.Allow(ctx, "client-b"); !allowed {
		t.Error("client-b should not share client-a's counter")
	}

	// Test 4: Peek does not count
	peek, err := l.Peek(ctx, "client-a")
	if err != nil {
		t.Fatalf("Peek() error = %v", err)
	}
	if peek.Count != 4 {
		t.Errorf("Peek().Count = %d, want 4", peek.Count)
	}

	// Test 5: the next window starts over
	fixed = fixed.Add(time.Minute)
	if allowed, state, _ := l.Allow(ctx, "client-a"); !allowed || state.Count != 1 {
		t.Errorf("new window: allowed=%v count=%d, want true 1", allowed, state.Count)
	}
}

func TestLimiter_Integration_Middleware(t *testing.T) {
	redisClient := testutil.StartRedis(t)
	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)

	l, err := NewLimiter(redisClient, Config{Limit: 2, Window: time.Minute}, logger)
	if err != nil {
		t.Fatalf("NewLimiter() error = %v", err)
	}

	limited := middleware.FromMiddleware(l.Middleware())
	handler := middleware.Handler(limited(func(*http.Request) (*middleware.Response, error) {
		return middleware.NewResponse(http.StatusOK, []byte("ok")), nil
	}))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/items", nil)
		req.RemoteAddr = "198.51.100.7:5555"
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		last = rec
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 200 429]", codes)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("429 response should carry Retry-After")
	}
	if got := last.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
}
