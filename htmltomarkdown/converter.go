// Package htmltomarkdown converts extracted content HTML to Markdown
// for the persistent page cache, where stored pages stay inspectable
// and can be re-fragmented without refetching.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/sitewise/sitebot"
)

// Ensure Converter implements sitebot.Converter at compile time.
var _ sitebot.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms clean content HTML into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitebot.Errorf(sitebot.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
