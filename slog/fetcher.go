// Package slog provides logging decorators for sitebot interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitewise/sitebot"
)

var _ sitebot.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every fetch with its outcome.
type LoggingFetcher struct {
	fetcher sitebot.Fetcher
	logger  *slog.Logger
}

func NewLoggingFetcher(fetcher sitebot.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{fetcher: fetcher, logger: logger}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.fetcher.Fetch(ctx, url)
	elapsed := time.Since(start)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"elapsed", elapsed.Round(time.Millisecond),
			"code", sitebot.ErrorCode(err),
			"err", err,
		)
		return "", err
	}
	f.logger.Info("fetched",
		"url", url,
		"bytes", len(html),
		"elapsed", elapsed.Round(time.Millisecond),
	)
	return html, nil
}

func (f *LoggingFetcher) Close() error {
	return f.fetcher.Close()
}
