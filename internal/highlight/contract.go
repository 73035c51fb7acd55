package highlight

// Grammar describes the lexical rules of one language.
// Implementations must be safe to share between blocks rendered
// concurrently; the tokenizers they produce are not.
type Grammar interface {
	// Tokenizer returns a tokenizer whose incremental parse state
	// is scoped to a single code block.
	Tokenizer() Tokenizer
}

// Tokenizer turns the lines of one code block into scoped tokens.
// It carries parse state forward from line to line and must not be
// reused across blocks or shared between goroutines.
type Tokenizer interface {
	// TokenizeLine tokenizes the next line of the block.
	// The line must include its trailing newline.
	// Tokens are returned in order and cover the entire line.
	TokenizeLine(line string) []Token
}

// Token is a run of source text tagged with the scopes active over it.
type Token struct {
	Value string

	// Scopes is the stack of scope names active over Value,
	// outermost first. Each name is a dotted path such as
	// "keyword.control".
	Scopes []string
}

// Theme resolves token scopes to concrete colors and carries the
// block-level color settings.
type Theme interface {
	// Highlighter returns a styling tokenizer bound to this theme
	// and the given grammar, scoped to a single code block.
	Highlighter(g Grammar) Highlighter

	// Foreground is the theme's default text color.
	// It reports false if the theme does not define one.
	Foreground() (Color, bool)

	// Background is the theme's default background color.
	Background() (Color, bool)

	// LineHighlight is the background color for marked lines.
	LineHighlight() (Color, bool)
}

// Highlighter styles the lines of one code block.
// Like a [Tokenizer], it is owned by a single block.
type Highlighter interface {
	// HighlightLine tokenizes and styles the next line,
	// returning regions that cover it in order.
	// The line must include its trailing newline.
	HighlightLine(line string) []Region
}

// Region is a run of source text with fully resolved colors.
type Region struct {
	Text       string
	Foreground Color
	Background Color
}

// Selection is the grammar and optional theme resolved for one code
// block. A nil Theme selects class mode.
type Selection struct {
	Grammar Grammar
	Theme   Theme
}
