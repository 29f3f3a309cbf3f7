// Package trafilatura implements webgrab.Extractor using article-mode
// content extraction. It trades the DOM heuristics of the goquery extractor
// for go-trafilatura's boilerplate removal, then classifies the surviving
// elements through the same admission pipeline, so ordering, thresholds,
// and global deduplication behave identically.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/webgrab"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webgrab.Extractor at compile time.
var _ webgrab.Extractor = (*Extractor)(nil)

// candidateTags are the element kinds classified during the content walk.
var candidateTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "li": true, "td": true, "blockquote": true,
	"div": true, "span": true, "a": true,
}

// Extractor wraps go-trafilatura to extract content blocks from HTML.
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

// Extract processes raw HTML and returns the ordered block structure.
// An empty result is a valid non-error outcome; trafilatura failing to find
// an article body is treated as no content, not as an error.
func (e *Extractor) Extract(rawHTML string) (webgrab.Structure, error) {
	b := webgrab.NewBuilder(e.limits)
	if rawHTML == "" {
		return b.Structure(), nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// No extractable article is a no-content condition.
		return b.Structure(), nil
	}

	b.AddTitle(result.Metadata.Title)
	b.AddDescription(result.Metadata.Description)

	if result.ContentNode != nil {
		walk(result.ContentNode, func(n *html.Node) {
			b.Visit(n.Data, flattenText(n))
		})
	}

	return b.Structure(), nil
}

// walk visits candidate element nodes in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && candidateTags[c.Data] {
			visit(c)
		}
		walk(c, visit)
	}
}

// flattenText concatenates all descendant text nodes of n.
func flattenText(n *html.Node) string {
	var sb strings.Builder
	var rec func(*html.Node)
	rec = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return sb.String()
}
