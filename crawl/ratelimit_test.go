package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewise/sitebot/crawl"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("paces requests within a domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(50) // 20ms between requests
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "https://example.com/a"))
		require.NoError(t, limiter.Wait(ctx, "https://example.com/b"))
		assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	})

	t.Run("domains limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "https://a.example.com/"))
		require.NoError(t, limiter.Wait(ctx, "https://b.example.com/"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("zero rate does not block", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0)
		ctx := context.Background()

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(ctx, "https://example.com/"))
		}
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.001)
		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, limiter.Wait(ctx, "https://example.com/"))

		cancel()
		assert.Error(t, limiter.Wait(ctx, "https://example.com/"))
	})
}
