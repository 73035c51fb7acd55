package highlight

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gcchaan/zola/internal/must"
)

// InlineEmitter renders lines as self-contained spans whose colors
// are resolved against a theme and embedded as inline styles.
// Every span it emits is closed on the same line, so inline mode has
// nothing to finalize.
type InlineEmitter struct {
	hl    Highlighter
	theme Theme

	// fgStyle is the style attribute a span gets when its only
	// declaration is the theme's default foreground. RenderLine
	// strips this exact fragment from its output: the <pre>
	// wrapper already sets the same color (see Emitter.PreStyle),
	// so the per-span declaration is redundant.
	fgStyle string

	// bg is the theme's default background. Regions matching it
	// get no background-color declaration.
	bg Color
}

// NewInlineEmitter builds an inline-mode emitter for one code block,
// binding the grammar to the theme's style rules.
func NewInlineEmitter(g Grammar, t Theme) *InlineEmitter {
	return &InlineEmitter{
		hl:      t.Highlighter(g),
		theme:   t,
		fgStyle: fmt.Sprintf(" style=%q", "color:"+themeForeground(t).CSS()+";"),
		bg:      themeBackground(t),
	}
}

// RenderLine renders the next line of the block, which must include
// its trailing newline. The returned fragment is self-contained.
func (e *InlineEmitter) RenderLine(line string) string {
	must.Truef(strings.HasSuffix(line, "\n"), "line %q must end with a newline", line)

	var sb strings.Builder
	for _, r := range e.hl.HighlightLine(line) {
		sb.WriteString(`<span style="`)
		if r.Background != e.bg {
			sb.WriteString("background-color:")
			sb.WriteString(r.Background.CSS())
			sb.WriteByte(';')
		}
		sb.WriteString("color:")
		sb.WriteString(r.Foreground.CSS())
		sb.WriteString(`;">`)
		template.HTMLEscape(&sb, []byte(r.Text))
		sb.WriteString("</span>")
	}

	// Literal substring removal, not a per-region decision.
	return strings.ReplaceAll(sb.String(), e.fgStyle, "")
}

func themeForeground(t Theme) Color {
	if c, ok := t.Foreground(); ok {
		return c
	}
	return DefaultForeground
}

func themeBackground(t Theme) Color {
	if c, ok := t.Background(); ok {
		return c
	}
	return DefaultBackground
}

func themeLineHighlight(t Theme) Color {
	if c, ok := t.LineHighlight(); ok {
		return c
	}
	return DefaultLineHighlight
}
