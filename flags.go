package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"

	"github.com/gcchaan/zola/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for zola-highlight.
type params struct {
	version bool

	Language    string
	Theme       string
	NoHighlight bool

	OutputFile string
	Marks      []lineRange
	Debug      flagvalue.FileSwitch

	// Input is the source file to render, '-' for stdin.
	Input string
}

// cliParser parses the command line arguments for zola-highlight.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("zola-highlight", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)

	var p params

	// Highlighting:
	fset.StringVar(&p.Language, "lang", "", "language tag of the input, e.g. 'py'")
	fset.StringVar(&p.Theme, "theme", "monokai", "theme name, or 'css' to defer colors to a style sheet")
	fset.BoolVar(&p.NoHighlight, "no-highlight", false, "escape the input without highlighting it")

	// Output:
	fset.StringVar(&p.OutputFile, "out", "", "write to this file instead of stdout")
	fset.Var(flagvalue.ListOf(&p.Marks), "mark", "line or range of lines to <mark>, e.g. '3' or '5-7' (repeatable)")

	// Program-level:
	fset.Var(&p.Debug, "debug", "print debugging output, optionally to a file")
	fset.BoolVar(&p.version, "version", false, "print the version and exit")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("ZOLA")); err != nil {
		return nil, errtrace.Wrap(err)
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "zola-highlight", _version)
		return nil, errHelp
	}

	switch args := fset.Args(); len(args) {
	case 0:
		p.Input = "-"
	case 1:
		p.Input = args[0]
	default:
		fmt.Fprintln(cmd.Stderr, "Please provide at most one input file.")
		return nil, errInvalidArguments
	}

	return p, nil
}

// lineRange is a closed range of 1-based line numbers,
// parsed from "N" or "N-M".
type lineRange struct {
	Start, End int
}

var _ flag.Getter = (*lineRange)(nil)

// Get returns the range itself.
func (r *lineRange) Get() any { return *r }

// String returns the range in the form it was parsed from.
func (r *lineRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Set receives the value for this flag.
func (r *lineRange) Set(s string) error {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		hi = lo
	}

	start, err := strconv.Atoi(lo)
	if err != nil {
		return errtrace.Errorf("bad line range %q: %v", s, err)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return errtrace.Errorf("bad line range %q: %v", s, err)
	}
	if start < 1 || end < start {
		return errtrace.Errorf("bad line range %q: lines are 1-based and ranges ascend", s)
	}

	r.Start, r.End = start, end
	return nil
}

func (r *lineRange) contains(line int) bool {
	return line >= r.Start && line <= r.End
}
