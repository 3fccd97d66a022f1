package mock

import "github.com/kspcapcom/kosdex"

var _ kosdex.Converter = (*Converter)(nil)

// Converter is a mock implementation of kosdex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
