package mock

import "github.com/kspcapcom/kosdex"

var _ kosdex.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of kosdex.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]kosdex.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]kosdex.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
