// Package linebuf provides line-buffered IO utilities.
//
// The highlight emitters consume code one terminated line at a time;
// linebuf turns arbitrarily chunked writes into that shape.
package linebuf

import (
	"bytes"
	"io"
)

// Writer returns an io.Writer that splits its input on newlines,
// calling emit for each line -- including the trailing newline.
// The done function flushes a final unterminated line, if any,
// and must be called when no more input is coming.
func Writer(emit func([]byte)) (_ io.Writer, done func()) {
	w := writer{emit: emit}
	return &w, w.flush
}

type writer struct {
	emit func([]byte)

	// pending holds text from a previous write
	// that hasn't yet seen its newline.
	pending bytes.Buffer
}

func (w *writer) Write(bs []byte) (int, error) {
	total := len(bs)
	for {
		line, rest, ok := bytes.Cut(bs, []byte("\n"))
		if !ok {
			// No newline left. Keep the tail for the next
			// write or the final flush.
			w.pending.Write(bs)
			break
		}

		if w.pending.Len() == 0 {
			// Common case: the chunk starts on a line
			// boundary, so emit straight out of bs.
			w.emit(bs[:len(line)+1])
		} else {
			w.pending.Write(bs[:len(line)+1])
			w.emit(w.pending.Bytes())
			w.pending.Reset()
		}
		bs = rest
	}
	return total, nil
}

// flush hands out buffered text even though it isn't newline
// terminated.
func (w *writer) flush() {
	if w.pending.Len() > 0 {
		w.emit(w.pending.Bytes())
		w.pending.Reset()
	}
}
