package kosdex

// Converter converts HTML to Markdown.
// Like Extractor, it serves the preview path rather than the build
// pipeline, which works on raw page HTML.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown.
	Convert(html string) (string, error)
}
