package webgrab

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// BlockKind classifies a content block. The wire values match the tag-style
// labels used throughout the renderers ("title", "h1".."h6", "paragraph").
type BlockKind string

// BlockKind constants.
const (
	KindTitle     BlockKind = "title"
	KindHeading1  BlockKind = "h1"
	KindHeading2  BlockKind = "h2"
	KindHeading3  BlockKind = "h3"
	KindHeading4  BlockKind = "h4"
	KindHeading5  BlockKind = "h5"
	KindHeading6  BlockKind = "h6"
	KindParagraph BlockKind = "paragraph"
)

// HeadingKind returns the BlockKind for a heading level between 1 and 6.
// It panics on out-of-range levels, which indicate a programming error.
func HeadingKind(level int) BlockKind {
	if level < 1 || level > 6 {
		panic(fmt.Sprintf("webgrab: invalid heading level %d", level))
	}
	return BlockKind("h" + strconv.Itoa(level))
}

// HeadingLevel returns the numeric level of a heading kind (1-6).
// It returns 0 for non-heading kinds.
func (k BlockKind) HeadingLevel() int {
	if len(k) != 2 || k[0] != 'h' {
		return 0
	}
	level := int(k[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}

// ContentBlock is one classified, deduplicated unit of extracted text.
type ContentBlock struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Structure is the ordered sequence of blocks produced by one extraction.
// Order is document traversal order, with the title block (if any) and the
// meta-description paragraph (if any) always first. A Structure is built once
// per extraction and must not be mutated afterwards; renderers treat it as
// read-only.
type Structure []ContentBlock

// Empty reports whether the extraction produced no blocks. Callers must
// treat an empty Structure as a distinct "no content" condition, not an error.
func (s Structure) Empty() bool {
	return len(s) == 0
}

// Hash returns a hex-encoded xxhash digest over the kinds and texts of all
// blocks, in order. Used to correlate runs in logs.
func (s Structure) Hash() string {
	h := xxhash.New()
	for _, b := range s {
		_, _ = h.WriteString(string(b.Kind))
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(b.Text)
		_, _ = h.WriteString("\x00")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
