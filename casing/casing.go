package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits an identifier-like name into its constituent words.
//
// The name is first split into segments on runs of '-', '_' and '/'.
// Within a segment, words separate at case boundaries: a run of lowercase
// letters and digits at the segment start, capitalized words such as “Ho”
// or “B2”, and a run of uppercase letters closing the segment. An
// uppercase run directly followed by a capitalized word is an acronym,
// whose last capital belongs to the following word: “XMLParser” splits
// into “XML” and “Parser”. Everything else is dropped; a segment with no
// recognizable word at all is kept as one opaque word, so no input
// characters are lost to exotic names.
//
// Case boundaries are ASCII; names in other scripts pass through as
// opaque words.
//
//	Words("a-B-HiHo-merryOh_yes_no_XYZ")
//
// yields [a B Hi Ho merry Oh yes no XYZ].
func Words(name string) []string {
	var words []string
	for _, segment := range splitSegments(name) {
		scanned := scanSegment(segment)
		if len(scanned) == 0 {
			words = append(words, segment) // opaque
			continue
		}
		words = append(words, scanned...)
	}
	return words
}

// Camel re-spells name in camelCase: the first word lowercased, every
// further word capitalized, joined without separators.
func Camel(name string) string {
	words := mustWords(name)
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// Pascal re-spells name in PascalCase: every word capitalized, joined
// without separators. Acronyms are capitalized like ordinary words, so
// “XMLParser” comes out as “XmlParser”.
func Pascal(name string) string {
	words := mustWords(name)
	var b strings.Builder
	for _, word := range words {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// Dashes re-spells name as lowercase words joined by '-'.
func Dashes(name string) string {
	return strings.ToLower(strings.Join(mustWords(name), "-"))
}

// Underscores re-spells name as lowercase words joined by '_'.
func Underscores(name string) string {
	return strings.ToLower(strings.Join(mustWords(name), "_"))
}

// mustWords guards the converters' invariant that tokenization yields at
// least one word. The opaque-word fallback makes this hold for every
// input, the empty name included.
func mustWords(name string) []string {
	words := Words(name)
	if len(words) == 0 {
		tracer().Errorf("casing: no words in %q", name)
		panic("casing: tokenizer returned no words")
	}
	return words
}

// capitalize uppercases the first rune of word and lowercases the rest.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// splitSegments splits name on runs of separator characters. Segments
// keep their position, so leading or trailing separators yield empty
// segments just like consecutive ones collapse to a single split.
func splitSegments(name string) []string {
	var segs []string
	start := 0
	i := 0
	for i < len(name) {
		if !isSeparator(name[i]) {
			i++
			continue
		}
		segs = append(segs, name[start:i])
		for i < len(name) && isSeparator(name[i]) {
			i++
		}
		start = i
	}
	return append(segs, name[start:])
}

// scanSegment scans one separator-free segment for case-boundary words.
// It returns nil for segments without any match.
func scanSegment(seg string) []string {
	var words []string
	i := 0
	// a lowercase/digit run binds only at the segment start
	if len(seg) > 0 && isLowerDigit(seg[0]) {
		j := 1
		for j < len(seg) && isLowerDigit(seg[j]) {
			j++
		}
		words = append(words, seg[:j])
		i = j
	}
	for i < len(seg) {
		if !isUpper(seg[i]) {
			i++ // unrecognized characters separate words and are dropped
			continue
		}
		j := i + 1
		for j < len(seg) && isUpper(seg[j]) {
			j++
		}
		if j < len(seg) && isLowerDigit(seg[j]) {
			// the run's last capital starts a capitalized word; what
			// precedes it is an acronym of its own
			if j-i >= 2 {
				words = append(words, seg[i:j-1])
			}
			k := j
			for k < len(seg) && isLowerDigit(seg[k]) {
				k++
			}
			words = append(words, seg[j-1:k])
			i = k
			continue
		}
		if j == len(seg) {
			words = append(words, seg[i:j]) // trailing acronym
		}
		i = j // a run before an unrecognized character binds to nothing
	}
	return words
}

func isSeparator(b byte) bool {
	return b == '-' || b == '_' || b == '/'
}

func isUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

func isLowerDigit(b byte) bool {
	return 'a' <= b && b <= 'z' || '0' <= b && b <= '9'
}
