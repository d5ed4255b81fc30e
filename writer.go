package scribe

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/uax/uax11"
)

// Options configures a Writer. The zero value selects four-space
// indentation and a wrap width of 80 columns.
type Options struct {
	// UseTabs selects tab characters for indentation instead of spaces.
	UseTabs bool
	// IndentWidth is the number of indent characters added per indentation
	// level. Zero selects the default: 4 for spaces, 1 for tabs.
	IndentWidth int
	// Delim is the delimiter pair used by Block when BlockOptions carries
	// none. Nil selects the empty pair, i.e. blocks without delimiters.
	Delim *Delim
	// WrapWidth is the target line width for EmitWrappedText, in terminal
	// columns. Zero selects 80.
	WrapWidth int
	// Context is the UAX#11 context for resolving ambiguous character
	// widths. Nil selects uax11.LatinContext.
	Context *uax11.Context
}

// Delim is a pair of block or bracket delimiters, e.g. “{” and “}”.
// Either side may be empty.
type Delim struct {
	Open  string
	Close string
}

// Writer is a buffer of complete text lines together with the indentation
// state under which new lines are emitted.
//
// All emit operations append to the buffer; nothing already emitted is ever
// re-flowed. Lines are stored without trailing newlines and joined by
// Render.
//
// The zero value is a valid, empty writer with default options.
//
// A Writer must not be used concurrently from multiple goroutines.
type Writer struct {
	opt Options
	// lines holds the buffer contents, one entry per line, without '\n'.
	lines []string
	// depth is the current indentation, counted in indent characters.
	depth int
}

// NewWriter creates an empty writer with the given options.
func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt}
}

// Emit appends a single line, prefixed by the current indentation.
// The empty string appends a blank line without any indentation.
//
// s must not contain a newline; embedded line breaks would silently
// corrupt the line structure of the buffer, so Emit rejects them with
// ErrEmbeddedNewline and leaves the buffer unchanged.
func (w *Writer) Emit(s string) error {
	if strings.ContainsRune(s, '\n') {
		return ErrEmbeddedNewline
	}
	if s == "" {
		w.lines = append(w.lines, "")
		return nil
	}
	w.lines = append(w.lines, w.indentPrefix()+s)
	return nil
}

// Emitf appends a single line formatted in the manner of fmt.Sprintf,
// prefixed by the current indentation.
func (w *Writer) Emitf(format string, args ...interface{}) error {
	return w.Emit(fmt.Sprintf(format, args...))
}

// EmitRaw appends pre-formatted text verbatim, bypassing indentation.
// The text may span multiple lines and must be newline-terminated
// (ErrRawNotTerminated otherwise). The empty string is a no-op.
func (w *Writer) EmitRaw(s string) error {
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		return ErrRawNotTerminated
	}
	w.lines = append(w.lines, strings.Split(strings.TrimSuffix(s, "\n"), "\n")...)
	return nil
}

// Render materializes the buffer as a single string. Every line, including
// the last, is terminated by a newline; an empty buffer renders as "".
//
// Render does not modify the buffer and may be called repeatedly,
// interleaved with further emit operations.
func (w *Writer) Render() string {
	if len(w.lines) == 0 {
		tracer().Debugf("rendering an empty writer")
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}

// String returns the rendered buffer, making a writer printable.
func (w *Writer) String() string {
	return w.Render()
}

// Len returns the number of lines in the buffer.
func (w *Writer) Len() int {
	return len(w.lines)
}

// Lines returns a copy of the buffer's lines, without trailing newlines.
func (w *Writer) Lines() []string {
	lines := make([]string, len(w.lines))
	copy(lines, w.lines)
	return lines
}

// EachLine calls f for every line of the buffer, in order, until f returns
// a non-nil error, which EachLine passes on to the caller.
func (w *Writer) EachLine(f func(i int, line string) error) error {
	for i, line := range w.lines {
		if err := f(i, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo streams the rendered buffer to out. It returns the number of
// bytes written. WriteTo implements io.WriterTo.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	var total int64
	for _, line := range w.lines {
		n, err := io.WriteString(out, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(out, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// TrimLastLineIfBlank removes the last line of the buffer if it is blank.
// Loops that emit “item, blank line” pairs use this to drop the final
// separator.
func (w *Writer) TrimLastLineIfBlank() {
	if last := len(w.lines) - 1; last >= 0 && w.lines[last] == "" {
		w.lines = w.lines[:last]
	}
}

// TrimTrailingBlankLines removes all blank lines at the end of the buffer.
func (w *Writer) TrimTrailingBlankLines() {
	n := len(w.lines)
	for n > 0 && w.lines[n-1] == "" {
		n--
	}
	w.lines = w.lines[:n]
}
