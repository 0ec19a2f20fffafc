package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/response"
)

// RateLimiter counts requests per client IP in fixed windows.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu     sync.Mutex
	counts map[string]int
	reset  map[string]time.Time
}

func NewRateLimiter(cfg *config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limit:  cfg.Limit,
		window: cfg.Window,
		now:    time.Now,
		counts: make(map[string]int),
		reset:  make(map[string]time.Time),
	}
}

func (rl *RateLimiter) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := clientIP(r)
		allowed, remaining, resetAt := rl.take(key)

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(resetAt.Sub(rl.now()).Seconds())+1))
			response.Error(w, http.StatusTooManyRequests, "Too many messages. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) take(key string) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if resetTime, exists := rl.reset[key]; !exists || !now.Before(resetTime) {
		rl.sweep(now)
		rl.reset[key] = now.Add(rl.window)
		rl.counts[key] = 0
	}

	if rl.counts[key] >= rl.limit {
		return false, 0, rl.reset[key]
	}
	rl.counts[key]++
	return true, rl.limit - rl.counts[key], rl.reset[key]
}

// sweep drops expired windows. Caller holds rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, resetTime := range rl.reset {
		if !now.Before(resetTime) {
			delete(rl.reset, key)
			delete(rl.counts, key)
		}
	}
}
