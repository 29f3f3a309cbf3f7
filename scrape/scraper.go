// Package scrape composes a fetcher and an extractor into the single-URL
// scraping pipeline.
package scrape

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/google/uuid"
)

// Scraper runs one fetch-plus-extract unit of work to completion. Each Run
// call is independent: nothing is cached or shared between invocations, and
// the fetcher's browser lifecycle is scoped to the call. For concurrent
// scrapes, use one Run call per goroutine; the Scraper itself holds no
// mutable state.
type Scraper struct {
	Fetcher   webgrab.Fetcher
	Extractor webgrab.Extractor

	// Logger receives one summary record per run. Optional.
	Logger *slog.Logger
}

// Run fetches the URL, extracts its content structure, and reports progress
// milestones through the optional callback. The returned Structure may be
// empty, which callers must surface as a "no content" outcome rather than
// an error.
func (s *Scraper) Run(ctx context.Context, url string, progress webgrab.ProgressFunc) (webgrab.Structure, error) {
	if err := validateURL(url); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	begin := time.Now()

	result, err := s.Fetcher.Fetch(ctx, url, progress)
	if err != nil {
		s.log(runID, url, nil, begin, err)
		return nil, err
	}

	report(progress, "Extracting content...", 95)

	structure, err := s.Extractor.Extract(result.HTML)
	if err != nil {
		s.log(runID, url, nil, begin, err)
		return nil, err
	}

	report(progress, "Complete!", 100)
	s.log(runID, url, structure, begin, nil)
	return structure, nil
}

// validateURL enforces the absolute http/https input contract.
func validateURL(url string) error {
	if url == "" {
		return webgrab.Errorf(webgrab.EINVALID, "URL required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return webgrab.Errorf(webgrab.EINVALID, "URL must start with http:// or https://")
	}
	return nil
}

func (s *Scraper) log(runID, url string, structure webgrab.Structure, begin time.Time, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info("scrape",
		"run", runID,
		"url", url,
		"blocks", len(structure),
		"content_hash", structure.Hash(),
		"duration", time.Since(begin),
		"err", err,
	)
}

func report(progress webgrab.ProgressFunc, message string, percent int) {
	if progress != nil {
		progress(message, percent)
	}
}
