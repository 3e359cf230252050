package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimiter paces requests to a fixed rate per second with a burst of one.
// Requests wait for their turn until their context is done.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter for rps requests per second. A non-positive
// rate rejects every request.
func NewRateLimiter(rps int) *RateLimiter {
	if rps <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(0, 0)}
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := rl.limiter.Wait(r.Context()); err != nil {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
