package scribe

// BlockOptions configures a single Block call.
type BlockOptions struct {
	// Before is the header text of the block, e.g. “if done”.
	Before string
	// After is appended after the closing delimiter, e.g. “;”, or emitted
	// as a line of its own when there is no closing delimiter.
	After string
	// Delim overrides the writer's default delimiter pair for this block.
	// Nil keeps the writer default; a pointer to the zero Delim suppresses
	// delimiters entirely.
	Delim *Delim
	// Width is the indent width for the block body. Zero selects the
	// writer's indent width.
	Width int
	// Allman places the opening delimiter on its own line instead of
	// appending it to the header (K&R).
	Allman bool
}

// Block emits a delimited, indented block: a header line with the opening
// delimiter, the body one indentation level deeper, and the closing
// delimiter.
//
//	w.Block(scribe.BlockOptions{Before: "if done", Delim: &scribe.Delim{"{", "}"}},
//	    func() error {
//	        return w.Emit("return nil")
//	    })
//
// produces
//
//	if done {
//	    return nil
//	}
//
// With Allman set the opening delimiter moves to its own line. Header,
// delimiters and trailer are each optional; absent parts are skipped, so a
// block without delimiters degrades to a plain indented suite under its
// header.
//
// If body fails, its error is returned and the closing line is not
// emitted; the indentation is restored regardless.
func (w *Writer) Block(opts BlockOptions, body func() error) error {
	width := opts.Width
	if width == 0 {
		width = w.dent()
	}
	if width < 0 {
		return ErrNegativeIndent
	}
	var delim Delim
	if opts.Delim != nil {
		delim = *opts.Delim
	} else if w.opt.Delim != nil {
		delim = *w.opt.Delim
	}
	if opts.Before != "" && !opts.Allman {
		line := opts.Before
		if delim.Open != "" {
			line += " " + delim.Open
		}
		if err := w.Emit(line); err != nil {
			return err
		}
	} else {
		if opts.Before != "" {
			if err := w.Emit(opts.Before); err != nil {
				return err
			}
		}
		if delim.Open != "" {
			if err := w.Emit(delim.Open); err != nil {
				return err
			}
		}
	}
	if err := w.IndentBy(width, body); err != nil {
		return err
	}
	switch {
	case delim.Close != "":
		return w.Emit(delim.Close + opts.After)
	case opts.After != "":
		return w.Emit(opts.After)
	}
	return nil
}
