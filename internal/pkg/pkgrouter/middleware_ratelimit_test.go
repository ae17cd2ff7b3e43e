package pkgrouter

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	h := RateLimit(RateLimitConfig{RPS: 1, Burst: 2})(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected burst to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %v", codes)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", rec.Code)
	}
}

func TestRateLimitIgnoresForwardedForByDefault(t *testing.T) {
	h := RateLimit(RateLimitConfig{RPS: 1, Burst: 2})(okHandler())

	passed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			passed++
		}
	}

	if passed != 2 {
		t.Fatalf("expected only the burst to pass for one peer, got %d", passed)
	}
}

func TestRateLimitTrustProxyKeysByForwardedFor(t *testing.T) {
	h := RateLimit(RateLimitConfig{RPS: 1, Burst: 1, TrustProxy: true})(okHandler())

	for _, fwd := range []string{"203.0.113.1", "203.0.113.2"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to pass, got %d", fwd, rec.Code)
		}
	}
}

func TestRateLimitDisabled(t *testing.T) {
	calls := 0
	h := RateLimit(RateLimitConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	for i := 0; i < 5; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	if calls != 5 {
		t.Fatalf("expected all calls to pass, got %d", calls)
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	l := newRateLimiter(1, 1)
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(limiterIdleTTL + time.Second)
	l.allow("b")

	if _, ok := l.clients["a"]; ok {
		t.Fatalf("expected idle client to be evicted")
	}
	if _, ok := l.clients["b"]; !ok {
		t.Fatalf("expected active client to be tracked")
	}
}

func TestRateLimiterSweepsOncePerInterval(t *testing.T) {
	l := newRateLimiter(1, 1)
	start := time.Unix(1000, 0)
	now := start
	l.now = func() time.Time { return now }

	l.allow("a")
	if !l.lastSweep.Equal(start) {
		t.Fatalf("expected first call to sweep, last sweep %v", l.lastSweep)
	}

	now = start.Add(limiterSweepEvery / 2)
	l.allow("b")
	if !l.lastSweep.Equal(start) {
		t.Fatalf("expected no sweep inside the interval, last sweep %v", l.lastSweep)
	}

	now = start.Add(limiterSweepEvery)
	l.allow("c")
	if !l.lastSweep.Equal(now) {
		t.Fatalf("expected sweep after the interval, last sweep %v", l.lastSweep)
	}
}

func TestRateLimiterCapsTrackedClients(t *testing.T) {
	l := newRateLimiter(1, 1)
	l.maxClients = 2
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		l.allow(key)
		now = now.Add(time.Second)
	}

	if len(l.clients) != 2 {
		t.Fatalf("expected 2 tracked clients, got %d", len(l.clients))
	}
	if _, ok := l.clients["a"]; ok {
		t.Fatalf("expected least recently seen client to be evicted")
	}
	if _, ok := l.clients["c"]; !ok {
		t.Fatalf("expected newest client to be tracked")
	}
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:5555"
	if got := clientKey(req, false); got != "192.168.1.5" {
		t.Fatalf("expected host only, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", " 1.2.3.4 , 5.6.7.8")
	if got := clientKey(req, false); got != "192.168.1.5" {
		t.Fatalf("expected forwarded header to be ignored, got %q", got)
	}
	if got := clientKey(req, true); got != "1.2.3.4" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", " ")
	if got := clientKey(req, true); got != "192.168.1.5" {
		t.Fatalf("expected peer address for blank header, got %q", got)
	}
}
