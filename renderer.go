package webgrab

// RenderSkip records a block that a renderer could not map to an output
// element. Skips never abort the document; they are accumulated so the
// omission stays visible to callers and tests.
type RenderSkip struct {
	// Index is the block's position in the rendered Structure.
	Index int

	// Kind is the block's kind.
	Kind BlockKind

	// Reason describes why the block was skipped.
	Reason string
}

// Artifact is a rendered document ready for delivery as a downloadable file.
type Artifact struct {
	// Name is the suggested filename.
	Name string

	// MIME is the content type of Data.
	MIME string

	// Data is the complete document payload.
	Data []byte

	// Skipped lists blocks the renderer dropped, in input order.
	Skipped []RenderSkip
}

// Renderer transforms a Structure into a downloadable document.
// Implementations are stateless pure transforms and must not mutate the
// input Structure.
type Renderer interface {
	Render(s Structure) (*Artifact, error)
}
