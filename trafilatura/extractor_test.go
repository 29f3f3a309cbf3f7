package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webgrab"
	webtrafilatura "github.com/fwojciec/webgrab/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements webgrab.Extractor.
var _ webgrab.Extractor = (*webtrafilatura.Extractor)(nil)

// articleHTML is long-form enough for article-mode extraction to keep it.
const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Widget Engineering Quarterly</title>
<meta name="description" content="A quarterly journal covering widget design, testing, and manufacture.">
</head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>The State of Widget Engineering</h1>
<p>Widget engineering has changed substantially over the past decade, moving from
artisanal workshops to fully automated production lines staffed by specialists.</p>
<h2>Materials and Methods</h2>
<p>Modern widgets combine recycled alloys with precision-machined composites,
which keeps unit costs predictable while improving long-term durability.</p>
<p>Testing regimes now include thermal cycling, vibration analysis, and
accelerated wear simulation before any widget reaches a customer.</p>
</article>
<footer>Copyright Widget Engineering Quarterly</footer>
</body>
</html>`

func TestExtractor_Extract_Article(t *testing.T) {
	t.Parallel()

	e := webtrafilatura.NewExtractor()
	s, err := e.Extract(articleHTML)

	require.NoError(t, err)
	require.False(t, s.Empty())

	var texts []string
	for _, block := range s {
		texts = append(texts, block.Text)
	}
	joined := strings.Join(texts, "\n")
	assert.Contains(t, joined, "Widget engineering has changed substantially")
	assert.Contains(t, joined, "thermal cycling")
}

func TestExtractor_Extract_InvariantsHold(t *testing.T) {
	t.Parallel()

	e := webtrafilatura.NewExtractor()
	s, err := e.Extract(articleHTML)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, block := range s {
		assert.False(t, seen[block.Text], "duplicate text %q", block.Text)
		seen[block.Text] = true

		assert.Equal(t, webgrab.Normalize(block.Text), block.Text, "texts must be normalized")
		assert.NotEmpty(t, block.Text)
	}
}

func TestExtractor_Extract_TitleFirst(t *testing.T) {
	t.Parallel()

	e := webtrafilatura.NewExtractor()
	s, err := e.Extract(articleHTML)
	require.NoError(t, err)
	require.False(t, s.Empty())

	if s[0].Kind == webgrab.KindTitle {
		for _, block := range s[1:] {
			assert.NotEqual(t, webgrab.KindTitle, block.Kind, "at most one title block")
		}
	}
}

func TestExtractor_Extract_EmptyInput(t *testing.T) {
	t.Parallel()

	e := webtrafilatura.NewExtractor()

	for _, html := range []string{"", "<html><body></body></html>", "not html at all"} {
		s, err := e.Extract(html)
		require.NoError(t, err, "no-content input must not be an error, input %q", html)
		assert.True(t, s.Empty(), "input %q", html)
	}
}
