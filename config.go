package sitebot

import "time"

// Fetch defaults.
const (
	// DefaultFetchTimeout bounds a single page fetch.
	DefaultFetchTimeout = 20 * time.Second

	// DefaultUserAgent is a browser-like identifying header; some
	// sites refuse obviously non-browser clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Retrieval defaults.
const (
	// DefaultTopK is the number of results returned by retrieval.
	DefaultTopK = 5

	// DefaultMinScore is the similarity floor a candidate must meet.
	DefaultMinScore = 0.15
)

// MinChunkLen is the absolute character floor for indexed chunks,
// applied during corpus aggregation.
const MinChunkLen = 30
