package goquery_test

import (
	"testing"

	sitegoquery "github.com/sitewise/sitebot/goquery"

	"github.com/sitewise/sitebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := sitegoquery.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, sitebot.EINVALID, sitebot.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Our Services</title></head><body><p>Content</p></body></html>`

	ext := sitegoquery.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Our Services", result.Title)
}

func TestExtractor_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav><a href="/home">Nav link</a></nav>
<header>Site header</header>
<p>Real content about our web development services.</p>
<footer>Copyright footer text</footer>
<script>var x = 1;</script>
</body></html>`

	ext := sitegoquery.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Real content")
	assert.NotContains(t, result.ContentHTML, "Nav link")
	assert.NotContains(t, result.ContentHTML, "Site header")
	assert.NotContains(t, result.ContentHTML, "Copyright footer")
	assert.NotContains(t, result.ContentHTML, "var x")
}

func TestExtractor_PrefersMainContainer(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="sidebar">Sidebar text</div>
<main><p>Main container content</p></main>
</body></html>`

	ext := sitegoquery.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Main container content")
	assert.NotContains(t, result.ContentHTML, "Sidebar text")
}

func TestExtractor_FallsBackToBody(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>Plain body content</p></body></html>`

	ext := sitegoquery.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Plain body content")
}
