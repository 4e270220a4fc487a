// Package readability provides a sitebot.Extractor backed by
// go-readability's article extraction.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/sitewise/sitebot"
)

// Ensure Extractor implements sitebot.Extractor at compile time.
var _ sitebot.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &sitebot.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
