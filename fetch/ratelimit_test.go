package fetch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/fetch"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements kosdex.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ kosdex.DomainLimiter = fetch.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := fetch.NewDomainLimiter(10) // 10 req/sec

		start := time.Now()
		err := limiter.Wait(context.Background(), "ksp-kos.github.io")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := fetch.NewDomainLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background(), "ksp-kos.github.io")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "ksp-kos.github.io")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := fetch.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "ksp-kos.github.io")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "other.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := fetch.NewDomainLimiter(1) // 1 req/sec

		err := limiter.Wait(context.Background(), "ksp-kos.github.io")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "ksp-kos.github.io")
		assert.Error(t, err, "should fail when context times out")
	})

	t.Run("concurrent requests are serialized per domain", func(t *testing.T) {
		t.Parallel()

		limiter := fetch.NewDomainLimiter(100) // 100 req/sec

		var wg sync.WaitGroup
		var completed atomic.Int32

		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := limiter.Wait(context.Background(), "ksp-kos.github.io")
				if err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load(), "all requests should complete")
	})
}
