//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspcapcom/kosdex"
	kosdexhttp "github.com/kspcapcom/kosdex/http"
)

func TestSitemapService_Integration_KOSDocs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := kosdexhttp.NewSitemapService(nil)

	urls, err := svc.DiscoverURLs(ctx, kosdex.BaseURL, kosdex.DocURLFilter())
	require.NoError(t, err)

	// GitHub Pages sites may not publish a sitemap; when they do, every
	// URL must pass the documentation filter.
	t.Logf("Found %d URLs from the kOS docs sitemap", len(urls))
	for _, u := range urls {
		assert.Contains(t, u, ".html")
	}
}
