// Package http provides HTTP-based implementations of sitebot.Fetcher
// and sitebot.URLSource for static sites that don't require
// JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sitewise/sitebot"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 4 << 20

// Ensure Fetcher implements sitebot.Fetcher at compile time.
var _ sitebot.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs with a single bounded
// HTTP GET per fetch. It sends a browser-like User-Agent header and
// rejects non-HTML responses.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to sitebot.DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
// Defaults to sitebot.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   sitebot.DefaultFetchTimeout,
		userAgent: sitebot.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", sitebot.Errorf(sitebot.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTML(contentType) {
		return "", sitebot.Errorf(sitebot.EINVALID, "non-HTML content type %q for %s", contentType, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op
// since http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// isHTML accepts text/html and xhtml content types. An absent header
// is accepted; many small sites omit it.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	return strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "application/xhtml")
}
