// Package docx renders a content structure as an OOXML word-processing
// document. The package is assembled from scratch (zip container plus the
// minimal XML parts) so the output has no dependency on templates or a
// licensed document library.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/fwojciec/webgrab"
)

// Ensure Renderer implements webgrab.Renderer at compile time.
var _ webgrab.Renderer = (*Renderer)(nil)

// Artifact identity for the rendered document.
const (
	Filename = "scraped_content.docx"
	MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// wordNS is the WordprocessingML main namespace.
const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// marginTwips is one inch expressed in twentieths of a point, applied to all
// four page margins.
const marginTwips = "1440"

// paragraphStyles maps block kinds to WordprocessingML paragraph style IDs.
// Heading levels 5 and 6 have no mapping and are skipped; the plain-text
// renderer does handle them, and the asymmetry is preserved intentionally.
var paragraphStyles = map[webgrab.BlockKind]string{
	webgrab.KindTitle:    "Title",
	webgrab.KindHeading1: "Heading1",
	webgrab.KindHeading2: "Heading2",
	webgrab.KindHeading3: "Heading3",
	webgrab.KindHeading4: "Heading4",
}

// Renderer renders a Structure into a complete .docx payload.
// Renderer is stateless and safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the document artifact. Blocks that cannot be mapped to an
// output element are recorded in the artifact's skip log and do not abort
// the remaining blocks.
func (r *Renderer) Render(s webgrab.Structure) (*webgrab.Artifact, error) {
	body, skipped := renderBody(s)

	parts := []struct {
		name string
		doc  *etree.Document
	}{
		{"[Content_Types].xml", contentTypesXML()},
		{"_rels/.rels", packageRelsXML()},
		{"word/_rels/document.xml.rels", documentRelsXML()},
		{"word/styles.xml", stylesXML()},
		{"word/document.xml", body},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, webgrab.Errorf(webgrab.EINTERNAL, "creating %s: %v", part.name, err)
		}
		if _, err := part.doc.WriteTo(w); err != nil {
			return nil, webgrab.Errorf(webgrab.EINTERNAL, "writing %s: %v", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, webgrab.Errorf(webgrab.EINTERNAL, "closing document package: %v", err)
	}

	return &webgrab.Artifact{
		Name:    Filename,
		MIME:    MIMEType,
		Data:    buf.Bytes(),
		Skipped: skipped,
	}, nil
}

// renderBody builds word/document.xml from the block sequence.
func renderBody(s webgrab.Structure) (*etree.Document, []webgrab.RenderSkip) {
	doc := newXMLDocument()
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNS)
	body := root.CreateElement("w:body")

	var skipped []webgrab.RenderSkip
	for i, block := range s {
		style, ok := paragraphStyles[block.Kind]
		switch {
		case ok:
			p := appendParagraph(body, style, block.Text)
			if block.Kind == webgrab.KindTitle {
				// Titles are centered and followed by a spacer paragraph.
				pPr := p.SelectElement("w:pPr")
				jc := pPr.CreateElement("w:jc")
				jc.CreateAttr("w:val", "center")
				appendParagraph(body, "", "")
			}
		case block.Kind == webgrab.KindParagraph:
			appendParagraph(body, "", block.Text)
		default:
			skipped = append(skipped, webgrab.RenderSkip{
				Index:  i,
				Kind:   block.Kind,
				Reason: fmt.Sprintf("no document style for kind %q", block.Kind),
			})
		}
	}

	// Section properties: US Letter with one-inch margins all around.
	sectPr := body.CreateElement("w:sectPr")
	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", "12240")
	pgSz.CreateAttr("w:h", "15840")
	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", marginTwips)
	pgMar.CreateAttr("w:right", marginTwips)
	pgMar.CreateAttr("w:bottom", marginTwips)
	pgMar.CreateAttr("w:left", marginTwips)
	pgMar.CreateAttr("w:header", "720")
	pgMar.CreateAttr("w:footer", "720")
	pgMar.CreateAttr("w:gutter", "0")

	return doc, skipped
}

// appendParagraph adds a w:p with an optional paragraph style and run text.
func appendParagraph(body *etree.Element, style, text string) *etree.Element {
	p := body.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	if style != "" {
		pStyle := pPr.CreateElement("w:pStyle")
		pStyle.CreateAttr("w:val", style)
	}
	if text != "" {
		run := p.CreateElement("w:r")
		t := run.CreateElement("w:t")
		t.CreateAttr("xml:space", "preserve")
		t.SetText(text)
	}
	return p
}

func newXMLDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func contentTypesXML() *etree.Document {
	doc := newXMLDocument()
	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/content-types")

	rels := types.CreateElement("Default")
	rels.CreateAttr("Extension", "rels")
	rels.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")

	xml := types.CreateElement("Default")
	xml.CreateAttr("Extension", "xml")
	xml.CreateAttr("ContentType", "application/xml")

	document := types.CreateElement("Override")
	document.CreateAttr("PartName", "/word/document.xml")
	document.CreateAttr("ContentType", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml")

	styles := types.CreateElement("Override")
	styles.CreateAttr("PartName", "/word/styles.xml")
	styles.CreateAttr("ContentType", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml")

	return doc
}

func packageRelsXML() *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument")
	rel.CreateAttr("Target", "word/document.xml")

	return doc
}

func documentRelsXML() *etree.Document {
	doc := newXMLDocument()
	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")

	rel := rels.CreateElement("Relationship")
	rel.CreateAttr("Id", "rId1")
	rel.CreateAttr("Type", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles")
	rel.CreateAttr("Target", "styles.xml")

	return doc
}

// stylesXML defines the Title and Heading1-4 paragraph styles referenced by
// the body. Sizes are in half-points.
func stylesXML() *etree.Document {
	doc := newXMLDocument()
	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", wordNS)

	normal := styles.CreateElement("w:style")
	normal.CreateAttr("w:type", "paragraph")
	normal.CreateAttr("w:styleId", "Normal")
	normal.CreateAttr("w:default", "1")
	name := normal.CreateElement("w:name")
	name.CreateAttr("w:val", "Normal")

	defs := []struct {
		id      string
		name    string
		size    string
		outline string
	}{
		{"Title", "Title", "56", ""},
		{"Heading1", "heading 1", "40", "0"},
		{"Heading2", "heading 2", "32", "1"},
		{"Heading3", "heading 3", "28", "2"},
		{"Heading4", "heading 4", "24", "3"},
	}
	for _, def := range defs {
		style := styles.CreateElement("w:style")
		style.CreateAttr("w:type", "paragraph")
		style.CreateAttr("w:styleId", def.id)

		name := style.CreateElement("w:name")
		name.CreateAttr("w:val", def.name)
		basedOn := style.CreateElement("w:basedOn")
		basedOn.CreateAttr("w:val", "Normal")

		pPr := style.CreateElement("w:pPr")
		if def.outline != "" {
			outline := pPr.CreateElement("w:outlineLvl")
			outline.CreateAttr("w:val", def.outline)
		}

		rPr := style.CreateElement("w:rPr")
		rPr.CreateElement("w:b")
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", def.size)
	}

	return doc
}
