package syntax

import (
	"fmt"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/gcchaan/zola/internal/highlight"
	"github.com/gcchaan/zola/internal/must"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, and fades comments ever so slightly.
var PlainStyle = chroma.MustNewStyle("plain", chroma.StyleEntries{
	chroma.Comment:    "#666666",
	chroma.Text:       "#111111",
	chroma.Background: "bg:#eeeeee",
})

func init() {
	styles.Register(PlainStyle)
}

// Theme adapts a Chroma style to the [highlight.Theme] contract.
// It is read-only and safe to share between blocks.
type Theme struct {
	style *chroma.Style
}

// NewTheme wraps a Chroma style.
func NewTheme(style *chroma.Style) *Theme {
	return &Theme{style: style}
}

// Foreground is the style's base text color, if it defines one.
func (t *Theme) Foreground() (highlight.Color, bool) {
	if c, ok := fromChroma(t.style.Get(chroma.Text).Colour); ok {
		return c, true
	}
	return fromChroma(t.style.Get(chroma.Background).Colour)
}

// Background is the style's page background, if it defines one.
func (t *Theme) Background() (highlight.Color, bool) {
	return fromChroma(t.style.Get(chroma.Background).Background)
}

// LineHighlight is the background for marked lines. Unlike the other
// settings it does not inherit from the style's background: a style
// without an explicit entry reports false so that callers fall back
// to the global default.
func (t *Theme) LineHighlight() (highlight.Color, bool) {
	if !t.style.Has(chroma.LineHighlight) {
		return highlight.Color{}, false
	}
	return fromChroma(t.style.Get(chroma.LineHighlight).Background)
}

// Highlighter returns a styling tokenizer for one code block.
// The grammar must have been produced by this package.
func (t *Theme) Highlighter(g highlight.Grammar) highlight.Highlighter {
	cg, ok := g.(*Grammar)
	if !ok {
		panic(fmt.Sprintf("syntax: grammar %T was not built by this package", g))
	}

	fg, ok := t.Foreground()
	if !ok {
		fg = highlight.DefaultForeground
	}
	bg, ok := t.Background()
	if !ok {
		bg = highlight.DefaultBackground
	}
	return &styler{lexer: cg.lexer, style: t.style, fg: fg, bg: bg}
}

// styler resolves each token of a line to concrete colors.
type styler struct {
	lexer  chroma.Lexer
	style  *chroma.Style
	fg, bg highlight.Color
}

func (s *styler) HighlightLine(line string) []highlight.Region {
	toks, err := chroma.Tokenise(s.lexer, nil, line)
	must.NotErrorf(err, "tokenize %q", line)

	out := make([]highlight.Region, 0, len(toks))
	for _, tok := range toks {
		if tok.Value == "" {
			continue
		}
		r := highlight.Region{Text: tok.Value, Foreground: s.fg, Background: s.bg}
		entry := s.style.Get(tok.Type)
		if c, ok := fromChroma(entry.Colour); ok {
			r.Foreground = c
		}
		if c, ok := fromChroma(entry.Background); ok {
			r.Background = c
		}
		out = append(out, r)
	}
	return out
}

// fromChroma converts a Chroma colour, which carries no alpha
// channel, to an opaque Color.
func fromChroma(c chroma.Colour) (highlight.Color, bool) {
	if !c.IsSet() {
		return highlight.Color{}, false
	}
	return highlight.Color{R: c.Red(), G: c.Green(), B: c.Blue(), A: 0xFF}, true
}
