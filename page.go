package kosdex

import (
	"context"
	"time"
)

// Page is a fetched documentation page ready for parsing.
type Page struct {
	URL  string
	Kind PageKind

	// HTML is the raw page body as served by the site.
	HTML string

	FetchedAt time.Time

	// FromCache reports whether the page was served from the local
	// page cache instead of the network.
	FromCache bool
}

// HarvestProgress reports progress during page harvesting.
type HarvestProgress struct {
	URL       string
	Completed int
	Total     int
	FromCache bool
	Error     error
}

// HarvestProgressFunc is called as pages are processed.
type HarvestProgressFunc func(HarvestProgress)

// Harvester retrieves documentation pages in bulk.
// Implementations hide cache lookups, rate limiting, retry logic, and
// concurrency.
type Harvester interface {
	HarvestAll(ctx context.Context, pages []DocPage, progress HarvestProgressFunc) ([]*Page, error)
}
