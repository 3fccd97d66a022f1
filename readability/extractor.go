// Package readability extracts main content from documentation pages
// using go-readability. The preview command falls back to it when
// trafilatura extraction fails.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/kspcapcom/kosdex"
)

// Ensure Extractor implements kosdex.Extractor at compile time.
var _ kosdex.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*kosdex.ExtractResult, error) {
	if rawHTML == "" {
		return nil, kosdex.Errorf(kosdex.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &kosdex.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
