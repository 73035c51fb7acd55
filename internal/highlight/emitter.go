package highlight

import (
	"html/template"
	"strings"
)

// NoHighlightEmitter passes lines through with HTML escaping only.
// It keeps no state and never needs finalizing; it exists so callers
// that want line numbers or marked lines without colors still go
// through the one rendering path.
type NoHighlightEmitter struct{}

// RenderLine returns the HTML-escaped line.
func (NoHighlightEmitter) RenderLine(line string) string {
	var sb strings.Builder
	template.HTMLEscape(&sb, []byte(line))
	return sb.String()
}

// variant is the closed set of rendering strategies behind [Emitter].
type variant interface {
	RenderLine(line string) string
}

var (
	_ variant = (*ClassedEmitter)(nil)
	_ variant = (*InlineEmitter)(nil)
	_ variant = NoHighlightEmitter{}
)

// Emitter renders the lines of one fenced code block to HTML.
// Construct one per block with [New], feed each line in order to
// RenderLine, then call Finalize exactly once after the last line.
// An Emitter is owned by a single goroutine and never reused across
// blocks.
type Emitter struct {
	v variant
}

// New selects the rendering strategy for one code block.
//
// Highlighting disabled always yields the passthrough emitter. With
// highlighting enabled, a resolved theme selects inline mode and the
// absence of one selects class mode; a missing theme is not an error.
func New(highlightCode bool, sel Selection) *Emitter {
	if !highlightCode {
		return &Emitter{v: NoHighlightEmitter{}}
	}
	if sel.Theme != nil {
		return &Emitter{v: NewInlineEmitter(sel.Grammar, sel.Theme)}
	}
	return &Emitter{v: NewClassedEmitter(sel.Grammar)}
}

// RenderLine renders the next line of the block. For the stateful
// modes the line must include its trailing newline, even on the last
// line of the block.
func (e *Emitter) RenderLine(line string) string {
	return e.v.RenderLine(line)
}

// Finalize closes any markup left open by previous lines and reports
// false when the active mode has nothing to close. Call it exactly
// once, after the last line.
func (e *Emitter) Finalize() (string, bool) {
	if c, ok := e.v.(*ClassedEmitter); ok {
		return c.Finalize(), true
	}
	return "", false
}

// PreStyle returns the inline style for the <pre> wrapper, so the
// whole block keeps the theme's colors even where no span applies,
// such as blank lines. Only inline mode has one.
func (e *Emitter) PreStyle() (string, bool) {
	in, ok := e.v.(*InlineEmitter)
	if !ok {
		return "", false
	}
	var sb strings.Builder
	sb.WriteString("background-color:")
	sb.WriteString(themeBackground(in.theme).CSS())
	sb.WriteString(";color:")
	sb.WriteString(themeForeground(in.theme).CSS())
	sb.WriteByte(';')
	return sb.String(), true
}

// PreClass returns the class for the <pre> wrapper. Only class mode
// has one; it shares the prefix of the per-scope span classes.
func (e *Emitter) PreClass() (string, bool) {
	if _, ok := e.v.(*ClassedEmitter); ok {
		return classPrefix + "code", true
	}
	return "", false
}

// MarkStyle returns the inline style a caller puts on the wrapper of
// a marked line, such as a <mark> element. Only inline mode has one;
// class mode expresses line marking through its style sheet.
func (e *Emitter) MarkStyle() (string, bool) {
	in, ok := e.v.(*InlineEmitter)
	if !ok {
		return "", false
	}
	return "background-color:" + themeLineHighlight(in.theme).CSS() + ";", true
}
