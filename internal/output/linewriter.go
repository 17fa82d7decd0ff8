package output

import (
	"fmt"
	"io"
)

// LineWriter writes space separated tokens, breaking lines before they
// exceed a maximum length.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a line writer. A non-positive length means 80.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}
