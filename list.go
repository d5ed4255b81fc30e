package scribe

// ListOptions configures a single EmitList call.
type ListOptions struct {
	// Before is prepended to the opening line, e.g. “let val = ”.
	Before string
	// After is appended after the closing bracket, e.g. “;”.
	After string
	// Sep separates the items. Empty selects “,”.
	Sep string
	// Compact lays the list out with continuation items aligned under the
	// first one. The zero value selects the expanded layout, one item per
	// indented line.
	Compact bool
	// SkipLastSep omits the separator after the last item of an expanded
	// list, for languages that forbid trailing separators.
	SkipLastSep bool
}

// EmitList lays out pre-rendered items between a pair of brackets.
//
// Lists of zero or one items collapse to a single line. Longer lists
// come in two layouts. Expanded puts every item on its own line, one
// indentation level deep, each followed by the separator:
//
//	let val = [
//	    a,
//	    b,
//	];
//
// Compact keeps the first item on the opening line and aligns the rest
// under it:
//
//	let val = [a,
//	           b];
//
// Compact alignment is by display columns and therefore unavailable on
// writers that indent with tabs; such a combination fails with
// ErrTabAlignment before anything is emitted.
func (w *Writer) EmitList(items []string, bracket Delim, opts ListOptions) error {
	if opts.Compact && w.opt.UseTabs {
		return ErrTabAlignment
	}
	sep := opts.Sep
	if sep == "" {
		sep = ","
	}
	tracer().Debugf("laying out %d list item(s)", len(items))
	switch len(items) {
	case 0:
		return w.Emit(opts.Before + bracket.Open + bracket.Close + opts.After)
	case 1:
		return w.Emit(opts.Before + bracket.Open + items[0] + bracket.Close + opts.After)
	}
	if opts.Compact {
		return w.emitCompactList(items, bracket, opts, sep)
	}
	return w.emitExpandedList(items, bracket, opts, sep)
}

func (w *Writer) emitCompactList(items []string, bracket Delim, opts ListOptions, sep string) error {
	if err := w.Emit(opts.Before + bracket.Open + items[0] + sep); err != nil {
		return err
	}
	rest := func() error {
		for i, item := range items[1:] {
			if i == len(items)-2 { // last item closes the list
				if err := w.Emit(item + bracket.Close + opts.After); err != nil {
					return err
				}
				continue
			}
			if err := w.Emit(item + sep); err != nil {
				return err
			}
		}
		return nil
	}
	if hang := w.measure(opts.Before + bracket.Open); hang > 0 {
		return w.IndentBy(hang, rest)
	}
	return rest()
}

func (w *Writer) emitExpandedList(items []string, bracket Delim, opts ListOptions, sep string) error {
	if opts.Before != "" || bracket.Open != "" {
		if err := w.Emit(opts.Before + bracket.Open); err != nil {
			return err
		}
	}
	err := w.Indent(func() error {
		for i, item := range items {
			if i == len(items)-1 && opts.SkipLastSep {
				if err := w.Emit(item); err != nil {
					return err
				}
				continue
			}
			if err := w.Emit(item + sep); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bracket.Close != "" || opts.After != "" {
		return w.Emit(bracket.Close + opts.After)
	}
	return nil
}
