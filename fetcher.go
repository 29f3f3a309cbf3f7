package webgrab

import "context"

// FetchResult holds the fully rendered page captured by a Fetcher.
type FetchResult struct {
	// HTML is the rendered document source after dynamic content has loaded.
	HTML string

	// Title is the page title reported by the browser.
	Title string
}

// ProgressFunc receives coarse progress milestones during a fetch or scrape.
// Percent is in the range 0-100. Implementations must be fast; they are
// called synchronously from the pipeline.
type ProgressFunc func(message string, percent int)

// Fetcher retrieves fully rendered pages from URLs.
// Implementations use browser automation to handle JavaScript-rendered and
// lazy-loaded content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, and returns
	// the rendered HTML and page title. The progress callback may be nil.
	// Each call uses an isolated browser instance that is torn down before
	// the call returns, on every exit path.
	//
	// Failures of any stage (launch, navigation, readiness timeout, script
	// execution) are returned as a single EUNAVAILABLE-coded error carrying
	// the underlying cause. No retries are attempted.
	Fetch(ctx context.Context, url string, progress ProgressFunc) (*FetchResult, error)
}
