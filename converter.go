package sitebot

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean content HTML (e.g., from an Extractor)
	// into its Markdown representation.
	Convert(html string) (string, error)
}
