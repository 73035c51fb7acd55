// zola-highlight renders source code to an HTML fragment,
// highlighting it line by line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"

	"github.com/gcchaan/zola/internal/errdefer"
	"github.com/gcchaan/zola/internal/highlight"
	"github.com/gcchaan/zola/internal/linebuf"
	"github.com/gcchaan/zola/internal/syntax"
)

var _version = "dev"

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("zola-highlight: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() { err = errors.Join(err, closeDebug()) }()
	debug := log.New(debugw, "", 0)

	var src io.Reader = cmd.Stdin
	if opts.Input != "-" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		src = f
	}

	out := cmd.Stdout
	if opts.OutputFile != "" {
		f, err := os.Create(opts.OutputFile)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	cfg := syntax.Config{
		HighlightCode:  !opts.NoHighlight,
		HighlightTheme: opts.Theme,
	}
	sel := syntax.Resolve(opts.Language, cfg)
	debug.Printf("lang=%q theme=%q highlight=%v marks=%v",
		opts.Language, opts.Theme, cfg.HighlightCode, opts.Marks)

	em := highlight.New(cfg.HighlightCode, sel)
	return errtrace.Wrap(renderBlock(out, src, em, opts.Marks))
}

// renderBlock streams src through the emitter one line at a time and
// wraps the rendered lines in a <pre><code> container. Lines covered
// by marks are additionally wrapped in <mark>.
func renderBlock(w io.Writer, src io.Reader, em *highlight.Emitter, marks []lineRange) error {
	openTag := "<pre"
	if style, ok := em.PreStyle(); ok {
		openTag += fmt.Sprintf(" style=%q", style)
	}
	if class, ok := em.PreClass(); ok {
		openTag += fmt.Sprintf(" class=%q", class)
	}
	openTag += "><code>"
	if _, err := io.WriteString(w, openTag); err != nil {
		return errtrace.Wrap(err)
	}

	markTag := "<mark>"
	if style, ok := em.MarkStyle(); ok {
		markTag = fmt.Sprintf("<mark style=%q>", style)
	}

	var (
		lineno   int
		writeErr error
	)
	lw, flush := linebuf.Writer(func(raw []byte) {
		lineno++

		// The emitters require terminated lines;
		// a file's last line may not have one.
		line := string(raw)
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}

		frag := em.RenderLine(line)
		if marked(marks, lineno) {
			frag = markTag + frag + "</mark>"
		}
		if writeErr == nil {
			_, writeErr = io.WriteString(w, frag)
		}
	})
	if _, err := io.Copy(lw, src); err != nil {
		return errtrace.Wrap(err)
	}
	flush()
	if writeErr != nil {
		return errtrace.Wrap(writeErr)
	}

	if closing, ok := em.Finalize(); ok {
		if _, err := io.WriteString(w, closing); err != nil {
			return errtrace.Wrap(err)
		}
	}

	_, err := io.WriteString(w, "</code></pre>\n")
	return errtrace.Wrap(err)
}

func marked(marks []lineRange, line int) bool {
	for _, m := range marks {
		if m.contains(line) {
			return true
		}
	}
	return false
}
