package syntax

import (
	"strings"
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcchaan/zola/internal/highlight"
)

// testStyle defines every setting the Theme adapter reads.
var testStyle = chroma.MustNewStyle("theme-adapter-test", chroma.StyleEntries{
	chroma.Text:          "#cccccc",
	chroma.Background:    "bg:#282828",
	chroma.LineHighlight: "bg:#444444",
	chroma.Keyword:       "#ff0000",
})

func TestThemeSettings(t *testing.T) {
	t.Parallel()

	theme := NewTheme(testStyle)

	fg, ok := theme.Foreground()
	require.True(t, ok)
	assert.Equal(t, "#cccccc", fg.CSS())

	bg, ok := theme.Background()
	require.True(t, ok)
	assert.Equal(t, "#282828", bg.CSS())

	hl, ok := theme.LineHighlight()
	require.True(t, ok)
	assert.Equal(t, "#444444", hl.CSS())
}

func TestThemeLineHighlightNotInherited(t *testing.T) {
	t.Parallel()

	// PlainStyle has no LineHighlight entry. It must report none
	// rather than inherit the page background, so that callers
	// fall back to the shared default.
	_, ok := NewTheme(PlainStyle).LineHighlight()
	assert.False(t, ok)
}

func TestThemeHighlighter(t *testing.T) {
	t.Parallel()

	theme := NewTheme(testStyle)
	grammar := NewGrammar(chroma.Coalesce(lexers.Get("go")))
	hl := theme.Highlighter(grammar)

	line := "return x\n"
	regions := hl.HighlightLine(line)
	require.NotEmpty(t, regions)

	var covered strings.Builder
	for _, r := range regions {
		covered.WriteString(r.Text)
	}
	assert.Equal(t, line, covered.String(), "regions must cover the line")

	assert.Equal(t, "return", regions[0].Text)
	assert.Equal(t, "#ff0000", regions[0].Foreground.CSS(),
		"keyword color comes from the style")
	assert.Equal(t, "#282828", regions[0].Background.CSS(),
		"token background inherits the page background")

	last := regions[len(regions)-1]
	assert.Equal(t, "#cccccc", last.Foreground.CSS(),
		"plain text keeps the default foreground")
}

func TestThemeHighlighterRejectsForeignGrammar(t *testing.T) {
	t.Parallel()

	theme := NewTheme(testStyle)
	assert.Panics(t, func() {
		theme.Highlighter(foreignGrammar{})
	})
}

type foreignGrammar struct{}

func (foreignGrammar) Tokenizer() highlight.Tokenizer { return nil }
