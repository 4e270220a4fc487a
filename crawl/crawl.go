// Package crawl discovers the set of page URLs for a site. Discovery
// prefers the site's sitemap and falls back to a bounded breadth-first
// link walk from the site root.
package crawl

import (
	"context"
	"log/slog"

	"github.com/sitewise/sitebot"
)

// maxWalkURLs bounds a link walk when no explicit cap is configured,
// preventing runaway crawls on large sites.
const maxWalkURLs = 100

var _ sitebot.URLSource = (*Discoverer)(nil)

// Discoverer resolves a site root into page URLs: sitemap first, then
// a breadth-first walk over same-host links.
type Discoverer struct {
	// Source is the sitemap-based URL source. Optional; when nil or
	// when the sitemap yields nothing, discovery walks links instead.
	Source sitebot.URLSource

	Fetcher sitebot.Fetcher
	Links   sitebot.LinkExtractor

	// Limiter, when set, paces walk fetches per domain.
	Limiter sitebot.DomainLimiter

	Logger *slog.Logger

	// MaxPages caps the number of pages visited by a link walk.
	// Defaults to maxWalkURLs.
	MaxPages int
}

// DiscoverURLs returns the site's page URLs. Returns EEMPTY when
// neither the sitemap nor the link walk finds any page.
func (d *Discoverer) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	if d.Source != nil {
		urls, err := d.Source.DiscoverURLs(ctx, baseURL)
		if err != nil {
			d.logger().Warn("sitemap discovery failed", "url", baseURL, "err", err)
		} else if len(urls) > 0 {
			return urls, nil
		}
	}
	return d.walk(ctx, baseURL)
}

// walk visits pages breadth-first from baseURL, collecting the URLs
// that fetched successfully. Individual fetch failures are logged and
// skipped.
func (d *Discoverer) walk(ctx context.Context, baseURL string) ([]string, error) {
	frontier := NewFrontier(10000, 0.01)
	frontier.Push(baseURL)

	var visited []string
	for len(visited) < d.maxPages() {
		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, sitebot.Errorf(sitebot.EUNAVAILABLE, "URL discovery was canceled.")
		}

		if d.Limiter != nil {
			if err := d.Limiter.Wait(ctx, pageURL); err != nil {
				return nil, err
			}
		}
		html, err := d.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			d.logger().Warn("walk fetch failed", "url", pageURL, "err", err)
			continue
		}
		visited = append(visited, pageURL)

		links, err := d.Links.ExtractLinks(html, pageURL)
		if err != nil {
			continue
		}
		for _, link := range links {
			frontier.Push(link)
		}
	}

	if len(visited) == 0 {
		return nil, sitebot.Errorf(sitebot.EEMPTY, "no pages reachable from %s", baseURL)
	}
	return visited, nil
}

func (d *Discoverer) maxPages() int {
	if d.MaxPages > 0 {
		return d.MaxPages
	}
	return maxWalkURLs
}

func (d *Discoverer) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}
