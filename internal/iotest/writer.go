// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that logs everything written to it
// to the given testing.TB.
func Writer(t testing.TB) io.Writer {
	return &tbWriter{t}
}

type tbWriter struct{ t testing.TB }

func (w *tbWriter) Write(b []byte) (int, error) {
	// t.Logf appends its own newline.
	w.t.Logf("%s", bytes.TrimSuffix(b, []byte("\n")))
	return len(b), nil
}
