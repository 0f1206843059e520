package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	handler := rl.Middleware()(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}
}

func TestRateLimiterBlocksOverBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	handler := rl.Middleware()(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first two requests = %v, want 200s", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler())

	// Each client IP gets its own bucket
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = fmt.Sprintf("10.0.0.%d:1234", i+1)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("IP %d: status = %d, want %d", i+1, rec.Code, http.StatusOK)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"X-Real-IP wins", "1.2.3.4", "5.6.7.8", "9.9.9.9:80", "1.2.3.4"},
		{"X-Forwarded-For next", "", "5.6.7.8", "9.9.9.9:80", "5.6.7.8"},
		{"RemoteAddr fallback", "", "", "9.9.9.9:80", "9.9.9.9:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLimiterCacheReusesLimiter(t *testing.T) {
	cache := newLimiterCache[string](1, 1)

	a := cache.get("key")
	b := cache.get("key")
	if a != b {
		t.Error("cache returned different limiters for the same key")
	}
}

func TestLimiterCacheClearIfExceeds(t *testing.T) {
	cache := newLimiterCache[string](1, 1)

	for i := 0; i < 5; i++ {
		cache.get(fmt.Sprintf("key-%d", i))
	}

	if cache.clearIfExceeds(10) {
		t.Error("cache cleared below the threshold")
	}
	if !cache.clearIfExceeds(4) {
		t.Error("cache not cleared above the threshold")
	}
	if len(cache.limiters) != 0 {
		t.Errorf("len(limiters) = %d after clear, want 0", len(cache.limiters))
	}
}
