package highlight

// Scripted stand-ins for the external grammar and theme engines.
// They let the emitter tests pick exact token scopes and region
// colors, including cross-line scope carry-over that real lexers
// rarely produce on demand.

type fakeGrammar struct {
	tokenize func(line string) []Token
}

var _ Grammar = (*fakeGrammar)(nil)

func (g *fakeGrammar) Tokenizer() Tokenizer {
	return fakeTokenizer{tokenize: g.tokenize}
}

type fakeTokenizer struct {
	tokenize func(line string) []Token
}

func (t fakeTokenizer) TokenizeLine(line string) []Token {
	return t.tokenize(line)
}

type fakeTheme struct {
	fg, bg, hl *Color
	style      func(line string) []Region
}

var _ Theme = (*fakeTheme)(nil)

func (t *fakeTheme) Foreground() (Color, bool)    { return deref(t.fg) }
func (t *fakeTheme) Background() (Color, bool)    { return deref(t.bg) }
func (t *fakeTheme) LineHighlight() (Color, bool) { return deref(t.hl) }

func (t *fakeTheme) Highlighter(Grammar) Highlighter {
	return fakeHighlighter{style: t.style}
}

type fakeHighlighter struct {
	style func(line string) []Region
}

func (h fakeHighlighter) HighlightLine(line string) []Region {
	return h.style(line)
}

func deref(c *Color) (Color, bool) {
	if c == nil {
		return Color{}, false
	}
	return *c, true
}

func colorOf(r, g, b uint8) *Color {
	return &Color{R: r, G: g, B: b, A: 0xFF}
}
