package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewise/sitebot"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitebot.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, Duration(sitebot.DefaultFetchTimeout), cfg.Fetch.Timeout)
		assert.Equal(t, "goquery", cfg.Fetch.Extractor)
		assert.Equal(t, sitebot.DefaultTopK, cfg.Retrieval.TopK)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
site:
  name: Acme Digital
  url: https://acme.example
  urls:
    - https://acme.example/
    - https://acme.example/services
fetch:
  timeout: 5s
  browser: true
cache:
  path: /tmp/sitebot.db
retrieval:
  top_k: 3
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "Acme Digital", cfg.Site.Name)
		assert.Equal(t, Duration(5*time.Second), cfg.Fetch.Timeout)
		assert.True(t, cfg.Fetch.Browser)
		assert.Equal(t, "/tmp/sitebot.db", cfg.Cache.Path)
		assert.Equal(t, 3, cfg.Retrieval.TopK)

		// Untouched keys keep their defaults.
		assert.Equal(t, sitebot.DefaultUserAgent, cfg.Fetch.UserAgent)
		assert.Equal(t, Duration(24*time.Hour), cfg.Cache.TTL)
	})

	t.Run("unknown extractor rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "fetch:\n  extractor: regex\n")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "unknown extractor")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})
}

func TestConfig_PageURLs(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	urls, discover := cfg.pageURLs()
	assert.Empty(t, urls)
	assert.False(t, discover, "nothing configured, nothing to discover")

	cfg.Site.URL = "https://acme.example"
	_, discover = cfg.pageURLs()
	assert.True(t, discover)

	cfg.Site.URLs = []string{"https://acme.example/about"}
	urls, discover = cfg.pageURLs()
	assert.Equal(t, []string{"https://acme.example/about"}, urls)
	assert.False(t, discover, "explicit list wins over discovery")
}
