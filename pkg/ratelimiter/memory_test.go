package ratelimiter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMemoryLimiterAllow(t *testing.T) {
	l := NewMemoryLimiter(5, time.Hour)
	defer l.Stop()

	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	ok, _ := l.Allow(ctx, "1.2.3.4")
	if ok {
		t.Error("6th request within the window should be rejected")
	}

	// A different client is unaffected.
	ok, _ = l.Allow(ctx, "5.6.7.8")
	if !ok {
		t.Error("different key should be allowed")
	}
}

func TestMemoryLimiterWindowExpiry(t *testing.T) {
	l := NewMemoryLimiter(2, 50*time.Millisecond)
	defer l.Stop()

	ctx := context.Background()

	l.Allow(ctx, "ip")
	l.Allow(ctx, "ip")

	if ok, _ := l.Allow(ctx, "ip"); ok {
		t.Fatal("should be limited while window is full")
	}

	time.Sleep(80 * time.Millisecond)

	if ok, _ := l.Allow(ctx, "ip"); !ok {
		t.Error("should be allowed after the oldest timestamps age out")
	}
}

func TestMemoryLimiterCleanup(t *testing.T) {
	l := NewMemoryLimiter(1, 10*time.Millisecond)
	defer l.Stop()

	l.Allow(context.Background(), "gone")
	time.Sleep(20 * time.Millisecond)
	l.cleanup()

	l.mu.Lock()
	_, exists := l.seen["gone"]
	l.mu.Unlock()
	if exists {
		t.Error("idle key should have been evicted")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name string
		xff  string
		xri  string
		want string
	}{
		{"forwarded single", "203.0.113.9", "", "203.0.113.9"},
		{"forwarded chain takes first", "203.0.113.9, 10.0.0.1", "", "203.0.113.9"},
		{"real ip fallback", "", "198.51.100.2", "198.51.100.2"},
		{"no headers", "", "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/public/messages", nil)
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
