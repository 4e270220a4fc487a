package crawl

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"

	"github.com/sitewise/sitebot"
)

var _ sitebot.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter, so requests to different domains
// proceed concurrently while requests within a domain are paced.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter with the given requests per
// second limit. Each domain's limiter has a burst of 1. A zero or
// negative rate disables limiting rather than blocking forever.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until the rate limit allows a request to the URL's host.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return sitebot.Errorf(sitebot.EINVALID, "invalid URL %q", rawURL)
	}

	d.mu.Lock()
	limiter, ok := d.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[u.Host] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
