package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webgrab"
)

// Ensure LoggingFetcher implements webgrab.Fetcher.
var _ webgrab.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   webgrab.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webgrab.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, progress webgrab.ProgressFunc) (result *webgrab.FetchResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		var title string
		if result != nil {
			bytes = len(result.HTML)
			title = result.Title
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", bytes,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, progress)
}
