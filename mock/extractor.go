package mock

import "github.com/fwojciec/webgrab"

var _ webgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webgrab.Extractor.
type Extractor struct {
	ExtractFn func(html string) (webgrab.Structure, error)
}

func (e *Extractor) Extract(html string) (webgrab.Structure, error) {
	return e.ExtractFn(html)
}
