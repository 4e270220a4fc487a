// Package goquery provides CSS-selector based implementations of
// content extraction, fragment iteration, structured classification
// input, and link discovery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitewise/sitebot"
)

// Ensure Extractor implements sitebot.Extractor at compile time.
var _ sitebot.Extractor = (*Extractor)(nil)

// boilerplateSelector matches elements that never carry answerable
// page content.
const boilerplateSelector = "nav, footer, header, aside, script, style, noscript, form, iframe, svg, button"

// contentContainers lists main-content containers in preference
// order. The first match wins over the whole document body.
var contentContainers = []string{
	"main",
	"article",
	"[role=main]",
	"#content",
	".content",
	"#main",
	".main-content",
}

// Extractor extracts main page content with goquery. Boilerplate
// elements are removed and a main-content container is preferred over
// the full body when one exists.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*sitebot.ExtractResult, error) {
	if rawHTML == "" {
		return nil, sitebot.Errorf(sitebot.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitebot.Errorf(sitebot.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(boilerplateSelector).Remove()

	content := doc.Find("body")
	for _, sel := range contentContainers {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			content = node
			break
		}
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}

	return &sitebot.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
