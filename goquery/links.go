package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitewise/sitebot"
)

// Ensure LinkExtractor implements sitebot.LinkExtractor at compile time.
var _ sitebot.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts same-host page links from HTML.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns same-host links resolved
// against baseURL, deduplicated in document order. Fragments and
// query strings are stripped; mailto, tel, and asset links are
// skipped.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitebot.Errorf(sitebot.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, sitebot.Errorf(sitebot.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			return
		}
		resolved.Fragment = ""
		resolved.RawQuery = ""
		if isAssetPath(resolved.Path) {
			return
		}

		u := resolved.String()
		if seen[u] {
			return
		}
		seen[u] = true
		links = append(links, u)
	})

	return links, nil
}

var assetExtensions = []string{
	".css", ".js", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico",
	".pdf", ".zip", ".xml", ".webp", ".woff", ".woff2", ".mp4",
}

func isAssetPath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range assetExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
