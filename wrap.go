package scribe

import (
	"strings"
	"unicode"
)

// WrapOptions configures a single EmitWrappedText call.
type WrapOptions struct {
	// Prefix is prepended to every produced line, after the current
	// indentation. Typically a comment marker like “# ” or “// ”.
	Prefix string
	// InitialPrefix is appended to Prefix on the first line only.
	InitialPrefix string
	// SubsequentPrefix is appended to Prefix on every line but the first.
	SubsequentPrefix string
	// IndentAfterFirst additionally indents every line but the first by one
	// indentation level, placed between Prefix and SubsequentPrefix. The
	// text then hangs under the first line while the comment markers stay
	// column-aligned.
	IndentAfterFirst bool
	// Width is the target line width in terminal columns, including the
	// prefixes. Zero selects the writer's wrap width.
	Width int
	// BreakLongWords allows cutting a word that is wider than a whole line.
	// Without it such a word produces an overwide line.
	BreakLongWords bool
	// BreakOnHyphens additionally allows line breaks after interior hyphens
	// of compound words.
	BreakOnHyphens bool
}

// EmitWrappedText fills the text s into lines no wider than the target
// width and appends them to the buffer. Words are packed greedily. Every
// whitespace character, newlines included, counts as one space; the run
// between two words stays put when both land on the same line and is
// swallowed by the line break otherwise. Leading whitespace stays on the
// first line, trailing whitespace is dropped.
//
// Every produced line starts with the current indentation followed by the
// configured prefixes, and the prefixes count against the width. Empty or
// all-whitespace text produces a single blank line.
//
//	w.EmitWrappedText(doc, scribe.WrapOptions{Prefix: "// ", Width: 60})
//
// A word that does not fit into the remaining space moves to the next
// line. A word wider than a whole line is emitted overwide unless
// BreakLongWords is set; widths narrower than the prefixes degrade to one
// unit per line rather than failing.
func (w *Writer) EmitWrappedText(s string, opts WrapOptions) error {
	width := opts.Width
	if width <= 0 {
		width = w.wrapWidth()
	}
	head := w.indentPrefix() + opts.Prefix + opts.InitialPrefix
	subsequent := opts.SubsequentPrefix
	if opts.IndentAfterFirst {
		subsequent = w.oneIndent() + subsequent
	}
	cont := w.indentPrefix() + opts.Prefix + subsequent

	chunks := splitChunks(s, opts.BreakOnHyphens)
	if len(chunks) == 0 {
		return w.EmitRaw("\n")
	}
	lines := w.fill(chunks, width, head, cont, opts.BreakLongWords)
	tracer().Debugf("wrapped text into %d line(s) at width %d", len(lines), width)
	return w.EmitRaw(strings.Join(lines, "\n") + "\n")
}

// wrapWidth is the target line width for wrapped text.
func (w *Writer) wrapWidth() int {
	if w.opt.WrapWidth > 0 {
		return w.opt.WrapWidth
	}
	return 80
}

// wrapChunk is an atom of wrappable text: a word, or a piece of a
// hyphen-split compound, together with the whitespace run separating it
// from its predecessor. A chunk with an empty sep attaches seamlessly to
// the chunk before it.
type wrapChunk struct {
	text string
	sep  string
}

// fill greedily packs chunks into lines of at most width columns. The
// first line carries prefix head, all further lines prefix cont.
// Separators stay between chunks sharing a line; a chunk moved to a fresh
// line loses its separator to the break, except on the first line, which
// keeps the text's leading whitespace.
func (w *Writer) fill(chunks []wrapChunk, width int, head, cont string, breakLong bool) []string {
	lines := make([]string, 0, 8)
	prefix := head
	avail := width - w.measure(head)
	text := "" // the current line, prefix not included
	textw := 0

	flush := func() {
		lines = append(lines, prefix+text)
		prefix = cont
		avail = width - w.measure(cont)
		text = ""
		textw = 0
	}

	for i := 0; i < len(chunks); i++ {
		if text == "" && len(lines) > 0 {
			chunks[i].sep = "" // the line break swallowed the separator
		}
		cw := w.measure(chunks[i].text)
		sw := w.measure(chunks[i].sep)
		if textw+sw+cw <= avail {
			text += chunks[i].sep + chunks[i].text
			textw += sw + cw
			continue
		}
		if cw > avail && breakLong {
			// chunk is wider than a whole line: cut off what still fits
			room := avail - textw - sw
			if avail < 1 {
				room = 1 // prefix wider than the target width
			}
			if room < 1 {
				if text == "" {
					chunks[i].sep = "" // the separator alone overflows
					i--
					continue
				}
				flush()
				i--
				continue
			}
			cut, rest := w.cutAtWidth(chunks[i].text, room)
			text += chunks[i].sep + cut
			textw += sw + w.measure(cut)
			flush()
			if rest != "" {
				chunks[i] = wrapChunk{text: rest}
				i--
			}
			continue
		}
		if cw > avail && text == "" {
			// unbreakable overwide chunk: emit it on a line of its own,
			// without its separator
			text = chunks[i].text
			textw = cw
			flush()
			continue
		}
		if text == "" {
			chunks[i].sep = "" // the separator alone overflows
			i--
			continue
		}
		// chunk fits on a fresh line: close this one and retry
		flush()
		i--
	}
	if text != "" {
		flush()
	}
	return lines
}

// cutAtWidth cuts the longest prefix of s measuring at most room columns,
// but at least one rune, so that degenerate widths still make progress.
// Cuts are at rune boundaries.
func (w *Writer) cutAtWidth(s string, room int) (string, string) {
	runes := []rune(s)
	cut := 1
	for n := 2; n <= len(runes); n++ {
		if w.measure(string(runes[:n])) > room {
			break
		}
		cut = n
	}
	return string(runes[:cut]), string(runes[cut:])
}

// splitChunks splits s into wrappable chunks: maximal whitespace-free
// words, each carrying the whitespace run in front of it, every
// whitespace character normalized to one space. Trailing whitespace is
// dropped. Words are additionally split after interior hyphens when
// breakOnHyphens is set; the tails carry no separator.
func splitChunks(s string, breakOnHyphens bool) []wrapChunk {
	chunks := make([]wrapChunk, 0, 8)
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == len(runes) {
			break
		}
		sep := strings.Repeat(" ", j-i)
		k := j
		for k < len(runes) && !unicode.IsSpace(runes[k]) {
			k++
		}
		word := string(runes[j:k])
		if breakOnHyphens {
			for n, part := range splitHyphenated(word) {
				if n > 0 {
					sep = ""
				}
				chunks = append(chunks, wrapChunk{text: part, sep: sep})
			}
		} else {
			chunks = append(chunks, wrapChunk{text: word, sep: sep})
		}
		i = k
	}
	return chunks
}

// splitHyphenated splits a word after hyphens joining letters, keeping the
// hyphen with the leading part: “self-similar” becomes “self-” and
// “similar”. A split needs at least two word characters before the hyphen,
// the adjacent one a letter, and a word character after it, so options
// like “-v”, arithmetic like “x--y”, and number ranges like “9-5” stay
// intact.
func splitHyphenated(word string) []string {
	runes := []rune(word)
	var parts []string
	start := 0
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] != '-' {
			continue
		}
		if i-2 < start || !isWordChar(runes[i-2]) || !isWordLetter(runes[i-1]) {
			continue
		}
		if !isWordChar(runes[i+1]) {
			continue
		}
		parts = append(parts, string(runes[start:i+1]))
		start = i + 1
	}
	if start == 0 {
		return []string{word}
	}
	return append(parts, string(runes[start:]))
}

func isWordLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordChar(r rune) bool {
	return isWordLetter(r) || unicode.IsDigit(r)
}
