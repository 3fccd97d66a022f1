package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kspcapcom/kosdex"
)

// Ensure LoggingDiscoverer implements kosdex.Discoverer.
var _ kosdex.Discoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps a Discoverer with debug logging.
type LoggingDiscoverer struct {
	next   kosdex.Discoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next kosdex.Discoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// DiscoverPages delegates to the wrapped discoverer and logs the
// operation.
func (d *LoggingDiscoverer) DiscoverPages(ctx context.Context, baseURL string) (pages []kosdex.DocPage, err error) {
	defer func(begin time.Time) {
		d.logger.Info("discovery",
			"url", baseURL,
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverPages(ctx, baseURL)
}
