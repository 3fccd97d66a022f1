package mock

import (
	"context"

	"github.com/kspcapcom/kosdex"
)

var _ kosdex.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of kosdex.Discoverer.
type Discoverer struct {
	DiscoverPagesFn func(ctx context.Context, baseURL string) ([]kosdex.DocPage, error)
}

func (d *Discoverer) DiscoverPages(ctx context.Context, baseURL string) ([]kosdex.DocPage, error) {
	return d.DiscoverPagesFn(ctx, baseURL)
}

var _ kosdex.TOCParser = (*TOCParser)(nil)

// TOCParser is a mock implementation of kosdex.TOCParser.
type TOCParser struct {
	ExtractPagesFn func(tocHTML, tocURL string) ([]kosdex.DocPage, error)
}

func (p *TOCParser) ExtractPages(tocHTML, tocURL string) ([]kosdex.DocPage, error) {
	return p.ExtractPagesFn(tocHTML, tocURL)
}

var _ kosdex.Harvester = (*Harvester)(nil)

// Harvester is a mock implementation of kosdex.Harvester.
type Harvester struct {
	HarvestAllFn func(ctx context.Context, pages []kosdex.DocPage, progress kosdex.HarvestProgressFunc) ([]*kosdex.Page, error)
}

func (h *Harvester) HarvestAll(ctx context.Context, pages []kosdex.DocPage, progress kosdex.HarvestProgressFunc) ([]*kosdex.Page, error) {
	return h.HarvestAllFn(ctx, pages, progress)
}
