package webgrab

import "unicode/utf8"

// Limits holds the admission thresholds for content extraction, counted in
// characters rather than bytes so multibyte scripts are measured the same as
// ASCII. The values are heuristics tuned against real pages; they are exposed
// as configuration rather than hard-coded so callers can adjust them.
type Limits struct {
	// MinText is the minimum normalized length for any traversal-derived text.
	MinText int

	// ShortTag is the minimum normalized length for text inside tags that are
	// disproportionately navigation when short (a, span, div).
	ShortTag int

	// Paragraph is the length above which non-heading text becomes a paragraph.
	Paragraph int

	// Title is the minimum normalized length for the page title.
	Title int

	// Description is the minimum normalized length for the meta description.
	Description int
}

// DefaultLimits returns the standard admission thresholds.
func DefaultLimits() Limits {
	return Limits{
		MinText:     10,
		ShortTag:    20,
		Paragraph:   30,
		Title:       3,
		Description: 10,
	}
}

// shortTags are the tags rejected below the ShortTag threshold.
var shortTags = map[string]bool{
	"a":    true,
	"span": true,
	"div":  true,
}

// headingLevels maps heading tag names to their numeric level.
var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

// Builder accumulates content blocks for a single extraction, applying
// normalization, the admission thresholds, and global exact-text
// deduplication. The first occurrence of any text wins; later duplicates are
// dropped regardless of tag kind.
//
// A Builder is scoped to one extraction call and must not be shared or
// reused across extractions.
type Builder struct {
	limits Limits
	blocks Structure
	seen   map[string]bool
}

// NewBuilder returns a Builder using the given thresholds.
func NewBuilder(limits Limits) *Builder {
	return &Builder{
		limits: limits,
		seen:   make(map[string]bool),
	}
}

// AddTitle emits the page title block if its normalized text qualifies.
// Only one title block is ever emitted; subsequent calls are ignored.
func (b *Builder) AddTitle(raw string) {
	if len(b.blocks) > 0 && b.blocks[0].Kind == KindTitle {
		return
	}
	text := Normalize(raw)
	if utf8.RuneCountInString(text) <= b.limits.Title || b.seen[text] {
		return
	}
	b.emit(KindTitle, text)
}

// AddDescription emits the meta-description paragraph if its normalized
// text qualifies. It belongs immediately after the title, so it must be
// called before any Visit calls.
func (b *Builder) AddDescription(raw string) {
	text := Normalize(raw)
	if utf8.RuneCountInString(text) <= b.limits.Description || b.seen[text] {
		return
	}
	b.emit(KindParagraph, text)
}

// Visit applies the admission rules to one traversed element, given its tag
// name (lowercase) and flattened raw text, emitting at most one block.
func (b *Builder) Visit(tag, raw string) {
	text := Normalize(raw)
	n := utf8.RuneCountInString(text)
	if text == "" || n < b.limits.MinText {
		return
	}
	if n < b.limits.ShortTag && shortTags[tag] {
		return
	}
	if b.seen[text] {
		return
	}

	if level, ok := headingLevels[tag]; ok {
		b.emit(HeadingKind(level), text)
		return
	}
	if n > b.limits.Paragraph {
		b.emit(KindParagraph, text)
	}
	// Short non-heading text between MinText and Paragraph is dropped.
}

// Structure returns the accumulated blocks. The result may be empty, which
// callers must treat as a valid "no content" outcome.
func (b *Builder) Structure() Structure {
	return b.blocks
}

func (b *Builder) emit(kind BlockKind, text string) {
	b.blocks = append(b.blocks, ContentBlock{Kind: kind, Text: text})
	b.seen[text] = true
}
