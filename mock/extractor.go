package mock

import "github.com/kspcapcom/kosdex"

var _ kosdex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of kosdex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*kosdex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*kosdex.ExtractResult, error) {
	return e.ExtractFn(html)
}
