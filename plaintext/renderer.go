// Package plaintext renders a content structure as a UTF-8 text document.
package plaintext

import (
	"strings"

	"github.com/fwojciec/webgrab"
)

// Ensure Renderer implements webgrab.Renderer at compile time.
var _ webgrab.Renderer = (*Renderer)(nil)

// Artifact identity for the rendered document.
const (
	Filename = "scraped_content.txt"
	MIMEType = "text/plain; charset=utf-8"
)

// rule is the banner line surrounding the title.
var rule = strings.Repeat("=", 80)

// Renderer renders a Structure into a plain-text payload. It is a
// deterministic pure function of its input: rendering the same Structure
// twice yields byte-identical output.
//
// Unlike the docx renderer, every heading level through 6 is representable
// here, so no blocks are ever skipped.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the text artifact.
func (r *Renderer) Render(s webgrab.Structure) (*webgrab.Artifact, error) {
	var lines []string

	for _, block := range s {
		switch {
		case block.Kind == webgrab.KindTitle:
			lines = append(lines, rule, strings.ToUpper(block.Text), rule, "")
		case block.Kind.HeadingLevel() > 0:
			marker := strings.Repeat("#", block.Kind.HeadingLevel())
			lines = append(lines, "", marker+" "+block.Text, "")
		case block.Kind == webgrab.KindParagraph:
			lines = append(lines, block.Text, "")
		}
	}

	return &webgrab.Artifact{
		Name: Filename,
		MIME: MIMEType,
		Data: []byte(strings.Join(lines, "\n")),
	}, nil
}
