// Package syntax resolves language tags to grammars and themes for
// the highlight package, backed by the Chroma lexer and style
// registries.
package syntax

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/gcchaan/zola/internal/highlight"
)

// ClassTheme is the theme name that defers colors to an external
// style sheet instead of a concrete Chroma style.
const ClassTheme = "css"

// Config carries the document-level highlighting settings that apply
// to every code block.
type Config struct {
	// HighlightCode enables syntax highlighting of code blocks.
	HighlightCode bool

	// HighlightTheme names the Chroma style used for inline
	// styling. The special name "css" selects class mode.
	HighlightTheme string
}

// Resolve picks the grammar and theme for one code block.
//
// Unknown language tags fall back to the plain-text grammar and
// unknown theme names to the Chroma fallback style, so Resolve always
// succeeds. No theme is attached when highlighting is disabled or
// when the configuration selects class mode.
func Resolve(lang string, cfg Config) highlight.Selection {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	sel := highlight.Selection{Grammar: NewGrammar(chroma.Coalesce(lexer))}
	if cfg.HighlightCode && cfg.HighlightTheme != ClassTheme {
		sel.Theme = NewTheme(styles.Get(cfg.HighlightTheme))
	}
	return sel
}
