package bloom_test

import (
	"testing"

	"github.com/sitewise/sitebot/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.TestAndAdd("https://example.com/about"))
	assert.True(t, f.TestAndAdd("https://example.com/about"))
	assert.True(t, f.Test("https://example.com/about"))
	assert.False(t, f.Test("https://example.com/other"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	for _, u := range []string{"a", "b", "c"} {
		f.TestAndAdd(u)
	}

	assert.InDelta(t, 3, float64(f.EstimatedCount()), 1)
}
