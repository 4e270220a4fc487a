package mock

import "github.com/sitewise/sitebot"

var _ sitebot.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitebot.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitebot.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitebot.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ sitebot.Fragmenter = (*Fragmenter)(nil)

// Fragmenter is a mock implementation of sitebot.Fragmenter.
type Fragmenter struct {
	FragmentsFn func(html string) ([]sitebot.Fragment, error)
}

func (f *Fragmenter) Fragments(html string) ([]sitebot.Fragment, error) {
	return f.FragmentsFn(html)
}

var _ sitebot.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitebot.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
