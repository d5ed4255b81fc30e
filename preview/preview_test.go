package preview

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scribe"
)

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func generate(t *testing.T, lines ...string) *scribe.Writer {
	t.Helper()
	w := scribe.NewWriter(scribe.Options{})
	for _, line := range lines {
		if err := w.Emit(line); err != nil {
			t.Fatalf("Emit failed: %v", err)
		}
	}
	return w
}

func TestFprintPlainLines(t *testing.T) {
	plainColors(t)
	w := generate(t, "one", "two", "three")
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if got, want := buf.String(), "one\ntwo\nthree\n"; got != want {
		t.Fatalf("unexpected preview: got %q want %q", got, want)
	}
}

func TestFprintLineNumbers(t *testing.T) {
	plainColors(t)
	w := generate(t, "one", "two", "three")
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{LineNumbers: true}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := "1 │ one\n2 │ two\n3 │ three\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected preview: got %q want %q", got, want)
	}
}

func TestFprintLineNumbersAlignRight(t *testing.T) {
	plainColors(t)
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "x"
	}
	w := generate(t, lines...)
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{LineNumbers: true}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	out := buf.String()
	if got, want := out[:len(" 1 │ x")], " 1 │ x"; got != want {
		t.Fatalf("first gutter misaligned: got %q want %q", got, want)
	}
	if got, want := out[len(out)-len("10 │ x\n"):], "10 │ x\n"; got != want {
		t.Fatalf("last gutter misaligned: got %q want %q", got, want)
	}
}

func TestFprintMarksLeadingWhitespace(t *testing.T) {
	plainColors(t)
	w := scribe.NewWriter(scribe.Options{})
	if err := w.Emit("if done {"); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	err := w.Indent(func() error {
		return w.Emit("return nil")
	})
	if err != nil {
		t.Fatalf("Indent failed: %v", err)
	}
	if err := w.EmitRaw("\tdone\n"); err != nil {
		t.Fatalf("EmitRaw failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{ShowWhitespace: true}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := "if done {\n····return nil\n→done\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected preview: got %q want %q", got, want)
	}
}

func TestFprintInteriorWhitespaceUnmarked(t *testing.T) {
	plainColors(t)
	w := generate(t, "a b\tc")
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{ShowWhitespace: true}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if got, want := buf.String(), "a b\tc\n"; got != want {
		t.Fatalf("only leading whitespace should be marked: got %q want %q", got, want)
	}
}

func TestFprintMarksOverflow(t *testing.T) {
	plainColors(t)
	w := generate(t, "short", "quite a long line")
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{LineWidth: 10}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := "short\nquite a long line ◀ 17\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected preview: got %q want %q", got, want)
	}
}

func TestFprintMeasuresDigitsAsSingleColumns(t *testing.T) {
	plainColors(t)
	w := generate(t, "x = 1234567890")
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{LineWidth: 14}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if got, want := buf.String(), "x = 1234567890\n"; got != want {
		t.Fatalf("a 14 column line must not overflow width 14: got %q want %q", got, want)
	}
}

func TestFprintZeroWidthDisablesOverflow(t *testing.T) {
	plainColors(t)
	w := generate(t, "quite a long line")
	var buf bytes.Buffer
	if err := Fprint(&buf, w, &Config{}); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if got, want := buf.String(), "quite a long line\n"; got != want {
		t.Fatalf("unexpected preview: got %q want %q", got, want)
	}
}

func TestFprintRejectsNilArguments(t *testing.T) {
	w := generate(t, "x")
	var buf bytes.Buffer
	if err := Fprint(&buf, nil, &Config{}); err == nil {
		t.Fatalf("expected an error for a nil writer")
	}
	if err := Fprint(&buf, w, nil); err == nil {
		t.Fatalf("expected an error for a nil config")
	}
	if err := Fprint(nil, w, &Config{}); err == nil {
		t.Fatalf("expected an error for a nil output")
	}
}

func TestConfigFromTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "scribe")
	defer teardown()

	config := ConfigFromTerminal()
	if !config.LineNumbers {
		t.Fatalf("terminal configs should number lines")
	}
	if config.LineWidth < 10 {
		t.Fatalf("line width heuristics bottom out at 10, got %d", config.LineWidth)
	}
}
