// Package goquery implements webgrab.Extractor with CSS-selector DOM
// heuristics.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webgrab"
)

// Ensure Extractor implements webgrab.Extractor at compile time.
var _ webgrab.Extractor = (*Extractor)(nil)

// noiseSelector matches elements that never carry visible textual content.
const noiseSelector = "script, style, noscript, iframe, svg, path"

// candidateSelector matches the element kinds visited during traversal.
const candidateSelector = "h1, h2, h3, h4, h5, h6, p, li, td, blockquote, div, span, a"

// Attribute patterns for the content-root fallback chain. Substring matches,
// case-insensitive, mirroring how real sites name their content containers.
var (
	rootIDPattern    = regexp.MustCompile(`(?i)content|main`)
	rootClassPattern = regexp.MustCompile(`(?i)content|main|wrapper`)
)

// Extractor extracts typed content blocks from rendered HTML. It selects a
// content root via a fallback heuristic chain, walks candidate elements in
// document order, and classifies and deduplicates their text.
type Extractor struct {
	limits webgrab.Limits
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLimits overrides the default admission thresholds.
func WithLimits(limits webgrab.Limits) Option {
	return func(e *Extractor) { e.limits = limits }
}

// NewExtractor creates a new Extractor with default thresholds.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{limits: webgrab.DefaultLimits()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the HTML and returns the ordered block structure.
// Parsing is lenient; an empty result is a valid non-error outcome.
func (e *Extractor) Extract(html string) (webgrab.Structure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webgrab.Errorf(webgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()

	b := webgrab.NewBuilder(e.limits)

	// Title and meta description are emitted first and seed the dedup set,
	// so traversal cannot re-emit them.
	if title := doc.Find("title").First(); title.Length() > 0 {
		b.AddTitle(title.Text())
	}
	if content, ok := doc.Find("meta[name=description]").First().Attr("content"); ok {
		b.AddDescription(content)
	}

	e.contentRoot(doc).Find(candidateSelector).Each(func(_ int, sel *goquery.Selection) {
		b.Visit(goquery.NodeName(sel), sel.Text())
	})

	return b.Structure(), nil
}

// contentRoot selects the subtree scoped for extraction. The fallback chain
// is an ordered priority heuristic: semantic containers first, then common
// id/class naming conventions, then the whole body.
func (e *Extractor) contentRoot(doc *goquery.Document) *goquery.Selection {
	finders := []func() *goquery.Selection{
		func() *goquery.Selection { return doc.Find("main").First() },
		func() *goquery.Selection { return doc.Find("article").First() },
		func() *goquery.Selection { return firstMatchingAttr(doc, "id", rootIDPattern) },
		func() *goquery.Selection { return firstMatchingAttr(doc, "class", rootClassPattern) },
	}
	for _, find := range finders {
		if sel := find(); sel != nil && sel.Length() > 0 {
			return sel
		}
	}
	return doc.Find("body")
}

// firstMatchingAttr returns the first element, in document order, whose
// attribute value matches the pattern. Returns nil if none match.
func firstMatchingAttr(doc *goquery.Document, attr string, pattern *regexp.Regexp) *goquery.Selection {
	var match *goquery.Selection
	doc.Find("[" + attr + "]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if value, ok := sel.Attr(attr); ok && pattern.MatchString(value) {
			match = sel
			return false
		}
		return true
	})
	return match
}
