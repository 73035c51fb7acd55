package syntax

import (
	"strings"
	"unicode"

	chroma "github.com/alecthomas/chroma/v2"

	"github.com/gcchaan/zola/internal/highlight"
	"github.com/gcchaan/zola/internal/must"
)

// Grammar adapts a Chroma lexer to the [highlight.Grammar] contract.
// It is read-only and safe to share between blocks.
type Grammar struct {
	lexer chroma.Lexer
	base  string // root scope, e.g. "source.python"
}

// NewGrammar wraps a Chroma lexer.
func NewGrammar(l chroma.Lexer) *Grammar {
	name := "plain"
	if cfg := l.Config(); cfg != nil {
		if s := scopeAtom(cfg.Name); s != "" {
			name = s
		}
	}
	return &Grammar{lexer: l, base: "source." + name}
}

// Tokenizer returns a tokenizer for one code block.
//
// Chroma lexers do not expose a resumable per-line parse state, so
// each line is tokenized on its own and constructs spanning lines
// degrade to per-line analysis. The tokenizer still owns its block
// exclusively and must not be shared.
func (g *Grammar) Tokenizer() highlight.Tokenizer {
	return &tokenizer{g: g}
}

type tokenizer struct {
	g *Grammar
}

func (t *tokenizer) TokenizeLine(line string) []highlight.Token {
	toks, err := chroma.Tokenise(t.g.lexer, nil, line)
	must.NotErrorf(err, "tokenize %q", line)

	out := make([]highlight.Token, 0, len(toks))
	for _, tok := range toks {
		if tok.Value == "" {
			continue
		}
		scopes := []string{t.g.base}
		if s := scopeName(tok.Type); s != "" {
			scopes = append(scopes, s)
		}
		out = append(out, highlight.Token{Value: tok.Value, Scopes: scopes})
	}
	return out
}

// scopeName derives a dotted scope name from a Chroma token type:
// KeywordNamespace becomes "keyword.namespace". Plain text and
// whitespace carry no scope of their own, nor do the formatter-level
// meta types.
func scopeName(t chroma.TokenType) string {
	if t <= 0 || t.Category() == chroma.Text {
		return ""
	}
	name := t.String()

	var sb strings.Builder
	sb.Grow(len(name) + 2)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('.')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// scopeAtom lowercases a lexer name into a single scope path atom,
// mapping anything that isn't a letter or digit to a dash:
// "Go HTML Template" becomes "go-html-template".
func scopeAtom(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
	}
	return strings.Trim(sb.String(), "-")
}
