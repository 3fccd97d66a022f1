package mock

import (
	"context"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of kosdex.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *kosdex.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *kosdex.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
