package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniredisLimiter(t *testing.T) (*miniredis.Miniredis, *RedisFixedWindowLimiter) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, NewRedisFixedWindowLimiter(client, "test:rl")
}

func TestRedisFixedWindowLimiterEnforcesLimit(t *testing.T) {
	_, limiter := newMiniredisLimiter(t)
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

func TestRedisFixedWindowLimiterNewWindowResets(t *testing.T) {
	srv, limiter := newMiniredisLimiter(t)
	ctx := context.Background()

	if allowed, _, _ := limiter.Allow(ctx, "1.2.3.4", 1, time.Second); !allowed {
		t.Fatal("first request rejected")
	}
	if allowed, _, _ := limiter.Allow(ctx, "1.2.3.4", 1, time.Second); allowed {
		t.Fatal("second request in the same window allowed")
	}

	srv.FastForward(2 * time.Second)
	if allowed, _, _ := limiter.Allow(ctx, "1.2.3.4", 1, time.Second); !allowed {
		t.Fatal("request in fresh window rejected")
	}
}

func TestRedisFixedWindowLimiterBackendDown(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	limiter := NewRedisFixedWindowLimiter(client, "test:rl")
	srv.Close()

	if _, _, err := limiter.Allow(context.Background(), "1.2.3.4", 3, time.Minute); err == nil {
		t.Fatal("expected error when backend is unreachable")
	}
}

func TestRedisFixedWindowLimiterNilClient(t *testing.T) {
	limiter := NewRedisFixedWindowLimiter(nil, "")
	if _, _, err := limiter.Allow(context.Background(), "k", 1, time.Minute); err == nil {
		t.Fatal("expected error for nil client")
	}
}
