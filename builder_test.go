package webgrab_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/webgrab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AddTitle(t *testing.T) {
	t.Parallel()

	t.Run("qualifying title emitted first", func(t *testing.T) {
		t.Parallel()

		b := webgrab.NewBuilder(webgrab.DefaultLimits())
		b.AddTitle("  Acme Co  ")

		s := b.Structure()
		require.Len(t, s, 1)
		assert.Equal(t, webgrab.ContentBlock{Kind: webgrab.KindTitle, Text: "Acme Co"}, s[0])
	})

	t.Run("too short is dropped", func(t *testing.T) {
		t.Parallel()

		b := webgrab.NewBuilder(webgrab.DefaultLimits())
		b.AddTitle("Ok!")

		assert.True(t, b.Structure().Empty())
	})

	t.Run("multibyte title measured in characters", func(t *testing.T) {
		t.Parallel()

		// Two characters, six bytes; still below the threshold.
		b := webgrab.NewBuilder(webgrab.DefaultLimits())
		b.AddTitle("東京")

		assert.True(t, b.Structure().Empty())
	})

	t.Run("only one title ever emitted", func(t *testing.T) {
		t.Parallel()

		b := webgrab.NewBuilder(webgrab.DefaultLimits())
		b.AddTitle("First Title")
		b.AddTitle("Second Title")

		s := b.Structure()
		require.Len(t, s, 1)
		assert.Equal(t, "First Title", s[0].Text)
	})
}

func TestBuilder_AddDescription(t *testing.T) {
	t.Parallel()

	b := webgrab.NewBuilder(webgrab.DefaultLimits())
	b.AddTitle("Acme Co")
	b.AddDescription("Acme builds widgets.")
	b.AddDescription("short text")     // exactly 10, not > 10
	b.AddDescription("ようこそ弊社へ") // 7 characters, not > 10

	s := b.Structure()
	require.Len(t, s, 2)
	assert.Equal(t, webgrab.KindParagraph, s[1].Kind)
	assert.Equal(t, "Acme builds widgets.", s[1].Text)
}

func TestBuilder_Visit_AdmissionRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
		text string
		want webgrab.BlockKind // "" means dropped
	}{
		{"empty text", "p", "   ", ""},
		{"below minimum length", "div", "Nav", ""},
		{"short anchor rejected", "a", "Read more here", ""},
		{"short span rejected", "span", "Read more here", ""},
		{"short div rejected", "div", "Read more here", ""},
		{"short li admitted path but not paragraph length", "li", "Read more here", ""},
		{"heading any qualifying length", "h2", "Our Mission", webgrab.KindHeading2},
		{"h6 classified", "h6", "Fine Print Notes", webgrab.KindHeading6},
		{"long text becomes paragraph", "p", "Acme builds widgets for the modern era, delivering quality.", webgrab.KindParagraph},
		{"long anchor becomes paragraph", "a", "Acme builds widgets for the modern era, delivering quality.", webgrab.KindParagraph},
		{"mid-length non-heading dropped", "p", "Just twenty-five chars!!", ""},
		{"multibyte heading below minimum", "h2", "会社案内", ""},
		{"multibyte heading qualifying", "h2", "私たちの会社のあゆみと理念", webgrab.KindHeading2},
		{"multibyte span below short-tag threshold", "span", "会社案内とお知らせ一覧です", ""},
		{"multibyte mid-length non-heading dropped", "p", "会社案内とお知らせ一覧です", ""},
		{"multibyte long text becomes paragraph", "p", "このページではアクメ社の製品づくりと品質への取り組みについて詳しくご紹介します。", webgrab.KindParagraph},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := webgrab.NewBuilder(webgrab.DefaultLimits())
			b.Visit(tt.tag, tt.text)

			s := b.Structure()
			if tt.want == "" {
				assert.True(t, s.Empty())
				return
			}
			require.Len(t, s, 1)
			assert.Equal(t, tt.want, s[0].Kind)
		})
	}
}

func TestBuilder_GlobalDedup(t *testing.T) {
	t.Parallel()

	b := webgrab.NewBuilder(webgrab.DefaultLimits())
	b.Visit("h2", "Our Mission Statement")
	b.Visit("p", "Our Mission Statement") // duplicate across kinds

	s := b.Structure()
	require.Len(t, s, 1)
	assert.Equal(t, webgrab.KindHeading2, s[0].Kind, "first occurrence wins")
}

func TestBuilder_DedupSeededByTitleAndDescription(t *testing.T) {
	t.Parallel()

	b := webgrab.NewBuilder(webgrab.DefaultLimits())
	b.AddTitle("Acme Widget Catalog")
	b.AddDescription("The finest widgets money can buy.")
	b.Visit("h1", "Acme Widget Catalog")
	b.Visit("p", "The finest widgets money can buy.")

	assert.Len(t, b.Structure(), 2)
}

func TestBuilder_NoDuplicateTexts(t *testing.T) {
	t.Parallel()

	b := webgrab.NewBuilder(webgrab.DefaultLimits())
	b.AddTitle("Acme Co Home")
	b.AddDescription("Everything about widgets in one place.")
	inputs := []struct{ tag, text string }{
		{"h1", "Welcome to the wonderful world of Acme"},
		{"p", "Welcome to the wonderful world of Acme"},
		{"p", "Acme builds widgets for the modern era, delivering quality."},
		{"td", "Acme builds widgets for the modern era, delivering quality."},
		{"h3", "Contact Details"},
		{"blockquote", "Quality is never an accident; it is always the result of effort."},
	}
	for _, in := range inputs {
		b.Visit(in.tag, in.text)
	}

	seen := make(map[string]bool)
	for _, block := range b.Structure() {
		assert.False(t, seen[block.Text], "duplicate text %q", block.Text)
		seen[block.Text] = true
	}
}

func TestBuilder_CustomLimits(t *testing.T) {
	t.Parallel()

	limits := webgrab.DefaultLimits()
	limits.MinText = 3
	limits.Paragraph = 5

	b := webgrab.NewBuilder(limits)
	b.Visit("p", "tiny but fine")

	s := b.Structure()
	require.Len(t, s, 1)
	assert.Equal(t, webgrab.KindParagraph, s[0].Kind)
}

func TestBuilder_NormalizesBeforeLengthChecks(t *testing.T) {
	t.Parallel()

	b := webgrab.NewBuilder(webgrab.DefaultLimits())
	// Raw length is inflated by whitespace; normalized it is "Nav" (3).
	b.Visit("div", "  N\na\tv   "+strings.Repeat("\u200B", 20))

	assert.True(t, b.Structure().Empty())
}
