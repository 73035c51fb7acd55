package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcchaan/zola/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{},
			want: params{
				Theme: "monokai",
				Input: "-",
			},
		},
		{
			desc: "many arguments",
			give: []string{
				"-lang", "py",
				"-theme", "css",
				"-no-highlight",
				"-out", "frag.html",
				"-mark", "3",
				"-mark=5-7",
				"-debug=log.txt",
				"hello.py",
			},
			want: params{
				Language:    "py",
				Theme:       "css",
				NoHighlight: true,
				OutputFile:  "frag.html",
				Marks:       []lineRange{{Start: 3, End: 3}, {Start: 5, End: 7}},
				Debug:       "log.txt",
				Input:       "hello.py",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_tooManyArguments(t *testing.T) {
	t.Parallel()

	_, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse([]string{"foo.py", "bar.py"})
	assert.ErrorIs(t, err, errInvalidArguments)
}

func TestCLIParser_version(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	_, err := (&cliParser{
		Stdout: &buff,
		Stderr: iotest.Writer(t),
	}).Parse([]string{"-version"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, buff.String(), "zola-highlight")
}

func TestLineRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give       string
		want       lineRange
		wantString string
	}{
		{give: "3", want: lineRange{Start: 3, End: 3}, wantString: "3"},
		{give: "5-7", want: lineRange{Start: 5, End: 7}, wantString: "5-7"},
		{give: "9-9", want: lineRange{Start: 9, End: 9}, wantString: "9"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var r lineRange
			require.NoError(t, r.Set(tt.give))
			assert.Equal(t, tt.want, r)
			assert.Equal(t, tt.wantString, r.String())
			assert.Equal(t, tt.want, r.Get())
		})
	}
}

func TestLineRange_errors(t *testing.T) {
	t.Parallel()

	tests := []string{"", "x", "0", "-3", "5-3", "1-x"}
	for _, give := range tests {
		give := give
		t.Run(give, func(t *testing.T) {
			t.Parallel()

			var r lineRange
			assert.Error(t, r.Set(give))
		})
	}
}

func TestLineRange_contains(t *testing.T) {
	t.Parallel()

	r := lineRange{Start: 5, End: 7}
	assert.False(t, r.contains(4))
	assert.True(t, r.contains(5))
	assert.True(t, r.contains(7))
	assert.False(t, r.contains(8))
}
