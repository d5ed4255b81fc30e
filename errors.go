package scribe

import "errors"

var (
	// ErrEmbeddedNewline signals that a string destined for a single buffer
	// line contains a newline character.
	ErrEmbeddedNewline = errors.New("scribe: line must not contain a newline")
	// ErrRawNotTerminated signals raw text that does not end with a newline.
	ErrRawNotTerminated = errors.New("scribe: raw text must end with a newline")
	// ErrNegativeIndent signals a negative width for an indentation scope.
	ErrNegativeIndent = errors.New("scribe: indent width must not be negative")
	// ErrTabAlignment signals a layout that would align continuation lines by
	// character count while the writer indents with tabs.
	ErrTabAlignment = errors.New("scribe: cannot align columns with tab indents")
)
