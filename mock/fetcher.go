// Package mock provides test doubles for the webgrab interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/webgrab"
)

var _ webgrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webgrab.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, progress webgrab.ProgressFunc) (*webgrab.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, progress webgrab.ProgressFunc) (*webgrab.FetchResult, error) {
	return f.FetchFn(ctx, url, progress)
}
