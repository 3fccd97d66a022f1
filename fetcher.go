package kosdex

import "context"

// Fetcher retrieves raw HTML from documentation URLs.
// Implementations identify themselves with a stable User-Agent so that
// site operators can attribute the traffic.
type Fetcher interface {
	// Fetch downloads the URL and returns the response body as HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases connection resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
