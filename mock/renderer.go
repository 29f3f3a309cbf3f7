package mock

import "github.com/fwojciec/webgrab"

var _ webgrab.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of webgrab.Renderer.
type Renderer struct {
	RenderFn func(s webgrab.Structure) (*webgrab.Artifact, error)
}

func (r *Renderer) Render(s webgrab.Structure) (*webgrab.Artifact, error) {
	return r.RenderFn(s)
}
