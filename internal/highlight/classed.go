package highlight

import (
	"html/template"
	"strings"

	"github.com/gcchaan/zola/internal/must"
	"github.com/gcchaan/zola/internal/sliceutil"
)

// classPrefix is prepended to every CSS class emitted in class mode,
// both the per-scope span classes and the container class reported by
// [Emitter.PreClass]. Style sheets must be authored against it.
const classPrefix = "z-"

// ClassedEmitter renders lines as nested spans tagged with
// scope-derived CSS classes, leaving colors to an external style
// sheet. Spans may remain open across lines; Finalize closes whatever
// is left at the end of the block.
type ClassedEmitter struct {
	tok Tokenizer

	// scopes holds the scope names with a currently open span,
	// outermost first.
	scopes []string

	// openSpans is the net number of spans opened but not yet
	// closed across all lines rendered so far.
	openSpans int
}

// NewClassedEmitter builds a class-mode emitter for one code block.
func NewClassedEmitter(g Grammar) *ClassedEmitter {
	return &ClassedEmitter{tok: g.Tokenizer()}
}

// RenderLine renders the next line of the block, which must include
// its trailing newline. The returned fragment carries no block-level
// wrapper and may leave spans open for later lines to continue.
func (e *ClassedEmitter) RenderLine(line string) string {
	must.Truef(strings.HasSuffix(line, "\n"), "line %q must end with a newline", line)

	var sb strings.Builder
	for _, tok := range e.tok.TokenizeLine(line) {
		keep := sliceutil.CommonPrefixLen(e.scopes, tok.Scopes)
		for i := len(e.scopes); i > keep; i-- {
			sb.WriteString("</span>")
		}
		for _, scope := range tok.Scopes[keep:] {
			sb.WriteString(`<span class="`)
			sb.WriteString(classAttr(scope))
			sb.WriteString(`">`)
		}
		template.HTMLEscape(&sb, []byte(tok.Value))

		e.openSpans += len(tok.Scopes) - len(e.scopes)
		e.scopes = append(e.scopes[:keep], tok.Scopes[keep:]...)
	}
	return sb.String()
}

// Finalize closes every span still open and must be called exactly
// once, after the last line of the block.
func (e *ClassedEmitter) Finalize() string {
	html := strings.Repeat("</span>", e.openSpans)
	e.openSpans = 0
	e.scopes = nil
	return html
}

// classAttr projects a dotted scope name onto prefixed CSS classes:
// "keyword.control" becomes "z-keyword z-control".
func classAttr(scope string) string {
	parts := strings.Split(scope, ".")
	for i, p := range parts {
		parts[i] = classPrefix + p
	}
	return strings.Join(parts, " ")
}
