package crawler

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outbound requests with a token bucket. One limiter
// is shared by every component of a discovery session (search queries and
// page fetches draw from the same bucket), replacing the coarse
// pause-every-N-calls heuristic with a precise global limit. It is safe
// for concurrent use; independent sessions get independent limiters.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond sustained requests
// with the given burst.
func NewRateLimiter(perSecond int, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = 5
	}
	if burst <= 0 {
		burst = 10
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until a request may proceed or the context is cancelled.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}
