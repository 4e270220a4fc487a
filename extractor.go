package sitebot

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, scripts) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Fragmenter converts clean content HTML into ordered text fragments,
// one per retained content element, with heading levels preserved.
type Fragmenter interface {
	Fragments(contentHTML string) ([]Fragment, error)
}
