package trafilatura_test

import (
	"testing"

	"github.com/sitewise/sitebot"
	"github.com/sitewise/sitebot/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := trafilatura.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, sitebot.EINVALID, sitebot.ErrorCode(err))
}

func TestExtractor_ExtractsMainContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Services</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>What we offer</h1>
<p>We design and build fast, accessible websites for small businesses
that want to grow their online presence without a big agency budget.</p>
<p>Every project includes performance tuning, analytics setup, and a
maintenance plan so the site stays healthy after launch.</p>
</article>
<footer>All rights reserved</footer>
</body>
</html>`

	result, err := trafilatura.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "accessible websites")
	assert.NotContains(t, result.ContentHTML, "All rights reserved")
}
