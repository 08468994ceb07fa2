package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kimmoihanus/geoaudit"
)

// Ensure LoggingFetcher implements geoaudit.Fetcher.
var _ geoaudit.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with fetch logging.
type LoggingFetcher struct {
	next   geoaudit.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next geoaudit.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
