package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/mock"
	kosslog "github.com/kspcapcom/kosdex/slog"
)

func TestLoggingDiscoverer_DiscoverPages(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with page count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Discoverer{
			DiscoverPagesFn: func(ctx context.Context, baseURL string) ([]kosdex.DocPage, error) {
				return []kosdex.DocPage{
					{URL: baseURL + "math/basic.html", Kind: kosdex.PageKindMath},
					{URL: baseURL + "language/flow.html", Kind: kosdex.PageKindLanguage},
				}, nil
			},
		}

		d := kosslog.NewLoggingDiscoverer(inner, logger)
		pages, err := d.DiscoverPages(context.Background(), "https://ksp-kos.github.io/KOS/")

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		output := buf.String()
		assert.Contains(t, output, "discovery")
		assert.Contains(t, output, "pages=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Discoverer{
			DiscoverPagesFn: func(ctx context.Context, baseURL string) ([]kosdex.DocPage, error) {
				return nil, errors.New("site unreachable")
			},
		}

		d := kosslog.NewLoggingDiscoverer(inner, logger)
		_, err := d.DiscoverPages(context.Background(), "https://ksp-kos.github.io/KOS/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"site unreachable\"")
	})
}
