package mock

import (
	"context"

	"github.com/sitewise/sitebot"
)

var _ sitebot.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of sitebot.URLSource.
type URLSource struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *URLSource) DiscoverURLs(ctx context.Context, siteURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL)
}

var _ sitebot.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitebot.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ sitebot.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitebot.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, rawURL string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, rawURL)
}
