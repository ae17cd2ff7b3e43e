package pkgrouter

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL     = 10 * time.Minute
	limiterSweepEvery  = time.Minute
	limiterMaxClients  = 10_000
	forwardedForHeader = "X-Forwarded-For"
)

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	// RPS is the refill rate in requests per second. Non-positive disables limiting.
	RPS float64
	// Burst is the bucket size, at least 1.
	Burst int
	// TrustProxy keys clients by the first X-Forwarded-For address instead of
	// the peer address. Only enable it behind a proxy that overwrites the header.
	TrustProxy bool
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu         sync.Mutex
	rps        rate.Limit
	burst      int
	clients    map[string]*clientLimiter
	maxClients int
	lastSweep  time.Time
	now        func() time.Time
}

func newRateLimiter(rps float64, burst int) *rateLimiter {
	if burst < 1 {
		burst = 1
	}

	return &rateLimiter{
		rps:        rate.Limit(rps),
		burst:      burst,
		clients:    make(map[string]*clientLimiter),
		maxClients: limiterMaxClients,
		now:        time.Now,
	}
}

func (l *rateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= limiterSweepEvery {
		l.sweep(now)
	}

	c, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= l.maxClients {
			l.sweep(now)
		}
		if len(l.clients) >= l.maxClients {
			l.evictOldest()
		}

		c = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// sweep drops clients idle for longer than limiterIdleTTL. Callers hold mu.
func (l *rateLimiter) sweep(now time.Time) {
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(l.clients, k)
		}
	}
	l.lastSweep = now
}

func (l *rateLimiter) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, c := range l.clients {
		if oldestKey == "" || c.lastSeen.Before(oldest) {
			oldestKey, oldest = k, c.lastSeen
		}
	}
	delete(l.clients, oldestKey)
}

func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		first, _, _ := strings.Cut(r.Header.Get(forwardedForHeader), ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit returns a middleware applying a token bucket of cfg.RPS requests
// per second with cfg.Burst to every client address.
//
// A non-positive RPS disables limiting.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.RPS <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := newRateLimiter(cfg.RPS, cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientKey(r, cfg.TrustProxy)) {
				w.Header().Set("Retry-After", "1")
				encodeError(r.Context(), w, pkgerror.NewTooManyRequests())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
