package scribe

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// The uax grapheme segmenter needs its character classes set up once per
// process.
var graphemesOnce sync.Once

// context resolves the writer's UAX#11 context.
func (w *Writer) context() *uax11.Context {
	if w.opt.Context != nil {
		return w.opt.Context
	}
	return uax11.LatinContext
}

// measure returns the display width of s, measured in “en”s, i.e. fixed
// width terminal positions. ASCII text measures one position per
// character; all other text goes through grapheme segmentation, with
// ambiguous characters resolved through the writer's UAX#11 context.
//
// The ASCII short-circuit is load-bearing: uax11 classes the keycap bases
// '#', '*' and the digits as emoji and reports them two columns wide,
// which would skew alignment and packing of ordinary code text.
func (w *Writer) measure(s string) int {
	if isASCII(s) {
		return len(s)
	}
	graphemesOnce.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, w.context())
}

// isASCII reports whether s contains only ASCII bytes.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
