package sitebot

import "context"

// URLSource discovers page URLs for a site, typically from its
// sitemap. Implementations hide robots.txt and sitemap index handling.
type URLSource interface {
	// DiscoverURLs returns same-host page URLs under baseURL's path.
	// Returns an empty slice (not nil) when no sitemap exists.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// LinkExtractor extracts same-host page links from HTML in document
// order, deduplicated and resolved against the base URL.
type LinkExtractor interface {
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting for fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the URL's
	// host. Returns an error if the context is canceled first.
	Wait(ctx context.Context, rawURL string) error
}
