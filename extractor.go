package webgrab

// Extractor turns rendered HTML into an ordered, deduplicated Structure of
// content blocks.
type Extractor interface {
	// Extract parses the HTML and returns the content structure. Malformed
	// HTML is tolerated (parsing is lenient); if nothing qualifies the
	// returned Structure is empty, which is a valid non-error outcome.
	Extract(html string) (Structure, error)
}
