package scribe

import "strings"

// Indent runs body with the indentation increased by one level, i.e. by the
// writer's configured indent width. The previous indentation is restored
// when body returns, whether it returns an error or panics. Errors from
// body are passed on unchanged.
//
//	w.Emit("if done {")
//	w.Indent(func() error {
//	    return w.Emit("return nil")
//	})
//	w.Emit("}")
func (w *Writer) Indent(body func() error) error {
	return w.IndentBy(w.dent(), body)
}

// IndentBy runs body with the indentation increased by width indent
// characters. Width zero is allowed and leaves the indentation unchanged;
// a negative width yields ErrNegativeIndent without running body.
//
// Alignment layouts use IndentBy with a measured width to place
// continuation lines under an opening construct.
func (w *Writer) IndentBy(width int, body func() error) error {
	if width < 0 {
		return ErrNegativeIndent
	}
	w.depth += width
	defer func() { w.depth -= width }()
	return body()
}

// indentChar is the character the writer indents with.
func (w *Writer) indentChar() string {
	if w.opt.UseTabs {
		return "\t"
	}
	return " "
}

// dent is the indent width of one indentation level.
func (w *Writer) dent() int {
	if w.opt.IndentWidth > 0 {
		return w.opt.IndentWidth
	}
	if w.opt.UseTabs {
		return 1
	}
	return 4
}

// indentPrefix is the prefix for lines emitted at the current indentation.
func (w *Writer) indentPrefix() string {
	return strings.Repeat(w.indentChar(), w.depth)
}

// oneIndent is the prefix fragment for a single indentation level.
func (w *Writer) oneIndent() string {
	return strings.Repeat(w.indentChar(), w.dent())
}
