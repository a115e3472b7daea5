package http

import (
	"context"

	"github.com/pagemark/pagemark"
	"golang.org/x/time/rate"
)

// Ensure ThrottledFetcher implements pagemark.Fetcher at compile time.
var _ pagemark.Fetcher = (*ThrottledFetcher)(nil)

// ThrottledFetcher wraps a Fetcher with a token-bucket rate limit so
// concurrent conversions stay polite to the shared relay. Burst is 1: no
// bursting allowed.
type ThrottledFetcher struct {
	next    pagemark.Fetcher
	limiter *rate.Limiter
}

// NewThrottledFetcher creates a ThrottledFetcher allowing rps requests per
// second across all callers.
func NewThrottledFetcher(next pagemark.Fetcher, rps float64) *ThrottledFetcher {
	return &ThrottledFetcher{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Fetch blocks until the rate limit allows the request, then delegates.
func (f *ThrottledFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", pagemark.Errorf(pagemark.EFETCH, "fetch %s: %v", url, err)
	}
	return f.next.Fetch(ctx, url)
}
