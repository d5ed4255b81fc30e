package preview

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/scribe"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for previews.
type Config struct {
	// LineWidth is the generator's target line width, in terminal columns.
	// Lines wider than this get an overflow mark; zero disables marking.
	LineWidth int
	// LineNumbers prefixes every line with its one-based number.
	LineNumbers bool
	// ShowWhitespace makes leading whitespace visible, '·' per space and
	// '→' per tab.
	ShowWhitespace bool
	// Palette provides the preview's colors. Nil selects a default
	// palette.
	Palette *Palette
	// Context is the UAX#11 context for resolving ambiguous character
	// widths. Nil selects uax11.LatinContext.
	Context *uax11.Context
}

// Palette maps the decorated parts of a preview to colors. A nil entry
// prints the part unstyled. Text from the buffer is never styled, only
// decoration is.
type Palette struct {
	LineNo     *color.Color
	Whitespace *color.Color
	Overflow   *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		LineNo:     color.New(color.FgBlue),
		Whitespace: color.New(color.FgHiBlack),
		Overflow:   color.New(color.FgRed),
	}
}

// Print renders the buffer of w to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print(w *scribe.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.ShowWhitespace = true
		config.Context = uax11.ContextFromEnvironment()
	}
	return Fprint(os.Stdout, w, config)
}

// Fprint renders the buffer of w to out, one terminal line per buffer
// line, decorated according to config.
//
// None of the arguments may be nil. However, it is safe to have
// config.Palette or config.Context set to nil; the defaults are used then.
func Fprint(out io.Writer, w *scribe.Writer, config *Config) error {
	if out == nil || w == nil || config == nil {
		return errors.New("illegal argument: nil")
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.Palette == nil {
		config.Palette = makeDefaultPalette()
	}
	gutter := len(fmt.Sprint(w.Len()))
	return w.EachLine(func(i int, line string) error {
		if config.LineNumbers {
			no := fmt.Sprintf("%*d │ ", gutter, i+1)
			if err := fprint(out, config.Palette.LineNo, no); err != nil {
				return err
			}
		}
		text := line
		if config.ShowWhitespace {
			marks, rest := markWhitespace(line)
			if marks != "" {
				if err := fprint(out, config.Palette.Whitespace, marks); err != nil {
					return err
				}
			}
			text = rest
		}
		if _, err := io.WriteString(out, text); err != nil {
			return err
		}
		if config.LineWidth > 0 {
			if lw := width(line, config.Context); lw > config.LineWidth {
				mark := fmt.Sprintf(" ◀ %d", lw)
				if err := fprint(out, config.Palette.Overflow, mark); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(out, "\n")
		return err
	})
}

// ConfigFromTerminal is a simple helper for creating a preview Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Line numbers
// are switched on.
func ConfigFromTerminal() *Config {
	config := &Config{LineNumbers: true}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("preview", "console").Infof("setting line width to %d en", config.LineWidth)
	return config
}

func fprint(out io.Writer, c *color.Color, s string) error {
	if c != nil {
		_, err := c.Fprint(out, s)
		return err
	}
	_, err := io.WriteString(out, s)
	return err
}

// markWhitespace splits off the leading whitespace of line and returns it
// as visible marks, together with the remaining text.
func markWhitespace(line string) (string, string) {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			b.WriteRune('·')
		case '\t':
			b.WriteRune('→')
		default:
			return b.String(), line[i:]
		}
	}
	return b.String(), ""
}

// The uax grapheme segmenter needs its character classes set up once per
// process.
var graphemesOnce sync.Once

// width measures s in “en”s, i.e. fixed width terminal positions. ASCII
// text counts one position per character; uax11 would class the keycap
// bases '#', '*' and the digits as two columns wide otherwise.
func width(s string, context *uax11.Context) int {
	if isASCII(s) {
		return len(s)
	}
	graphemesOnce.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
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
