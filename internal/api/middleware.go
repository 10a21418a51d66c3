package api

import (
	"net/http"
	"sync"
	"time"
)

// CORSMiddleware restricts cross-origin requests to the configured
// frontend origin.
func CORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowedOrigin == "*" || origin == allowedOrigin || origin == "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter caps requests per client IP inside a fixed window.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	span    time.Duration
}

type window struct {
	count   int
	started time.Time
}

// NewRateLimiter creates a limiter allowing max requests per span for
// each client IP.
func NewRateLimiter(max int, span time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		max:     max,
		span:    span,
	}

	// Drop stale windows periodically
	go func() {
		for {
			time.Sleep(5 * time.Minute)
			rl.mu.Lock()
			cutoff := time.Now().Add(-2 * rl.span)
			for ip, w := range rl.windows {
				if w.started.Before(cutoff) {
					delete(rl.windows, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()

	return rl
}

// Middleware returns an HTTP middleware that rate limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.RemoteAddr) {
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"success": false,
				"error":   "Too many requests from this IP, please try again later.",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.Sub(w.started) >= rl.span {
		rl.windows[key] = &window{count: 1, started: now}
		return true
	}

	if w.count >= rl.max {
		return false
	}
	w.count++
	return true
}
