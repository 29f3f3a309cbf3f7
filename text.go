package webgrab

import "strings"

// Normalize canonicalizes raw extracted text:
//
//   - strips C0/C1 control characters (0x00-0x08, 0x0B-0x0C, 0x0E-0x1F, 0x7F-0x9F)
//   - replaces non-breaking spaces with regular spaces
//   - removes zero-width spaces and byte-order marks
//   - collapses any run of whitespace into a single ASCII space
//   - trims leading and trailing whitespace
//
// Normalize is idempotent: applying it to already-normalized text is a no-op.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x00 && r <= 0x08, r == 0x0B, r == 0x0C,
			r >= 0x0E && r <= 0x1F, r >= 0x7F && r <= 0x9F:
			// control characters
		case r == '\u200B', r == '\uFEFF':
			// zero-width space, byte-order mark
		case r == '\u00A0':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}

	// Fields splits on any run of Unicode whitespace, which collapses
	// newlines and tabs and trims both ends in one pass.
	return strings.Join(strings.Fields(b.String()), " ")
}
