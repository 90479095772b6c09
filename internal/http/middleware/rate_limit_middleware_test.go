package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type mockLimiter struct {
	allow bool
	retry time.Duration
	err   error
}

func (m mockLimiter) Allow(context.Context, string, int, time.Duration) (bool, time.Duration, error) {
	return m.allow, m.retry, m.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLocalFixedWindowLimiterEnforcesLimit(t *testing.T) {
	limiter := NewLocalFixedWindowLimiter()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "1.2.3.4", 3, time.Minute)
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !allowed {
			t.Fatalf("request %d within limit was rejected", i)
		}
	}
	allowed, retryAfter, err := limiter.Allow(ctx, "1.2.3.4", 3, time.Minute)
	if err != nil {
		t.Fatalf("allow over limit: %v", err)
	}
	if allowed {
		t.Fatal("request over limit was allowed")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Fatalf("unexpected retry-after %v", retryAfter)
	}
}

func TestLocalFixedWindowLimiterIsolatesKeys(t *testing.T) {
	limiter := NewLocalFixedWindowLimiter()
	ctx := context.Background()
	if allowed, _, _ := limiter.Allow(ctx, "1.1.1.1", 1, time.Minute); !allowed {
		t.Fatal("first request for key A rejected")
	}
	if allowed, _, _ := limiter.Allow(ctx, "1.1.1.1", 1, time.Minute); allowed {
		t.Fatal("second request for key A allowed")
	}
	if allowed, _, _ := limiter.Allow(ctx, "2.2.2.2", 1, time.Minute); !allowed {
		t.Fatal("exhausting key A must not affect key B")
	}
}

func TestRateLimiterFailOpenOnBackendError(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{err: errors.New("redis down")}, 10, time.Minute, FailOpen, "api")
	h := rl.Middleware()(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.1:1111"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected fail-open to allow request, got %d", rr.Code)
	}
}

func TestRateLimiterFailClosedOnBackendError(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{err: errors.New("redis down")}, 10, time.Minute, FailClosed, "auth")
	h := rl.Middleware()(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/auth", nil)
	req.RemoteAddr = "10.0.0.1:1111"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected fail-closed to reject request, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

func TestRateLimiterDeniedSetsRetryAfter(t *testing.T) {
	rl := NewDistributedRateLimiter(mockLimiter{allow: false, retry: 5 * time.Second}, 1, time.Minute, FailClosed, "api")
	h := rl.Middleware()(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "10.0.0.1:1111"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "5" {
		t.Fatalf("expected Retry-After=5, got %q", got)
	}
}

func TestClientIPKeyStripsPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.RemoteAddr = "192.0.2.9:54321"
	if got := clientIPKey(req); got != "192.0.2.9" {
		t.Fatalf("expected bare IP, got %q", got)
	}
	req.RemoteAddr = "weird-without-port"
	if got := clientIPKey(req); got != "weird-without-port" {
		t.Fatalf("expected raw remote addr fallback, got %q", got)
	}
}
