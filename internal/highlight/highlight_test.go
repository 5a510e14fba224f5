package highlight

import (
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/PolarWolf314/herald/internal/ui"
	"github.com/fatih/color"
)

func forceColor(tb testing.TB) {
	tb.Helper()
	os.Unsetenv("NO_COLOR")
	original := color.NoColor
	color.NoColor = false
	tb.Cleanup(func() { color.NoColor = original })
}

func yellow(s string) string {
	return color.New(color.FgYellow).Sprint(s)
}

func TestStructural(t *testing.T) {
	forceColor(t)

	bracket := func(s string) string { return color.New(color.Bold, color.Faint).Sprint(s) }
	white := func(s string) string { return color.New(color.FgWhite, color.Bold).Sprint(s) }

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"PlainText", "hello world", "hello world"},
		{"Braces", "a{b}c", "a" + bracket("{") + "b" + bracket("}") + "c"},
		{"SquareBrackets", "[x]", bracket("[") + "x" + bracket("]")},
		{"Dashes", "a-b—c", "a" + white("-") + "b" + white("—") + "c"},
		{"Markers", "⏎→", white("⏎") + white("→")},
		{"QuotesUntouched", `"q"`, `"q"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Structural(tc.input)
			if got != tc.expected {
				t.Errorf("Structural(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestHighlightQuotes(t *testing.T) {
	forceColor(t)

	tests := []struct {
		name     string
		input    string
		expected string
		spans    int
	}{
		{"Empty", "", "", 0},
		{"NoQuotes", "nothing to see", "nothing to see", 0},
		{"SingleQuotedRun", `bad "thing" happened`, "bad " + yellow(`"thing"`) + " happened", 1},
		{"TwoRuns", `"a" and "b"`, yellow(`"a"`) + " and " + yellow(`"b"`), 2},
		{"EmptyQuotes", `x "" y`, "x " + yellow(`""`) + " y", 1},
		{"Unterminated", `say "hi`, `say "hi`, 0},
		{"OddQuotes", `"a" "b`, yellow(`"a"`) + ` "b`, 1},
		{"Unicode", `→ "héllo"`, color.New(color.FgWhite, color.Bold).Sprint("→") + " " + yellow(`"héllo"`), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, spans := Highlighter{}.Scan(tc.input)
			if got != tc.expected {
				t.Errorf("Scan(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
			if len(spans) != tc.spans {
				t.Errorf("Scan(%q) recorded %d spans, expected %d", tc.input, len(spans), tc.spans)
			}
			if Highlight(tc.input) != got {
				t.Errorf("Highlight(%q) disagrees with Scan", tc.input)
			}
		})
	}
}

func TestSpanPositions(t *testing.T) {
	forceColor(t)

	out, spans := Highlighter{}.Scan(`bad "thing" happened`)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	runes := []rune(out)
	inserted := string(runes[spans[0].Start:spans[0].End])
	if inserted != yellow(`"thing"`) {
		t.Errorf("span covers %q, expected %q", inserted, yellow(`"thing"`))
	}
	if spans[0].Start != 4 {
		t.Errorf("span starts at %d, expected 4", spans[0].Start)
	}
}

func TestQuotedStructuralGlyphs(t *testing.T) {
	forceColor(t)

	input := `key "a-b" set`
	out, spans := Highlighter{}.Scan(input)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if ui.StripANSI(out) != input {
		t.Errorf("visible text = %q, expected %q", ui.StripANSI(out), input)
	}
	if !strings.Contains(out, color.New(color.FgWhite, color.Bold).Sprint("-")) {
		t.Errorf("dash inside quotes should keep its structural paint: %q", out)
	}
}

func TestKeywordsLongestMatchWins(t *testing.T) {
	forceColor(t)

	h := Highlighter{Keywords: []string{"eq", "equals", "equal"}}
	out, spans := h.Scan(`"a" equals b`)

	expected := yellow(`"a"`) + " " + yellow("equals") + " b"
	if out != expected {
		t.Errorf("Scan() = %q, expected %q", out, expected)
	}
	if len(spans) != 2 {
		t.Errorf("expected 2 spans, got %d", len(spans))
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	forceColor(t)

	h := Highlighter{Keywords: []string{"equals"}}
	out, spans := h.Scan(`"a" EQUALS b`)
	if len(spans) != 1 {
		t.Errorf("expected only the quoted run to match, got %d spans", len(spans))
	}
	if !strings.Contains(out, "EQUALS") {
		t.Errorf("uppercase keyword should stay untouched: %q", out)
	}
}

func TestKeywordsBeforeFirstQuoteAreIgnored(t *testing.T) {
	forceColor(t)

	h := Highlighter{Keywords: []string{"equals"}}
	out, spans := h.Scan(`equals "a"`)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if !strings.HasPrefix(out, "equals ") {
		t.Errorf("text before the first quote should be untouched: %q", out)
	}
}

func TestKeywordsWithoutQuotes(t *testing.T) {
	forceColor(t)

	h := Highlighter{Keywords: []string{"equals"}}
	if got := h.Highlight("a equals b"); got != "a equals b" {
		t.Errorf("Highlight() = %q, expected message unchanged", got)
	}
}

func TestQuotesWithColorDisabled(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = original }()

	input := `a "b" {c} "d`
	out, spans := Highlighter{}.Scan(input)
	if out != input {
		t.Errorf("Scan() with colors disabled = %q, expected %q", out, input)
	}
	if len(spans) != 1 || spans[0] != (Span{Start: 2, End: 5}) {
		t.Errorf("spans = %+v, expected [{2 5}]", spans)
	}
}

func TestSupersede(t *testing.T) {
	spans := []Span{{0, 2}, {3, 5}, {10, 12}, {4, 6}}
	got := supersede(spans, Span{0, 8})
	// {0,2} and {3,5} are covered; {10,12} stops the sweep.
	if len(got) != 2 || got[0] != (Span{10, 12}) || got[1] != (Span{4, 6}) {
		t.Errorf("supersede() = %+v", got)
	}

	if got := supersede(nil, Span{0, 1}); len(got) != 0 {
		t.Errorf("supersede(nil) = %+v, expected empty", got)
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: 2, End: 4}
	for i, want := range map[int]bool{1: false, 2: true, 3: true, 4: false} {
		if s.Contains(i) != want {
			t.Errorf("Span{2,4}.Contains(%d) = %t, expected %t", i, !want, want)
		}
	}
}

func TestColoredInput(t *testing.T) {
	forceColor(t)

	red := "\x1b[31mred\x1b[0m"
	bold := "\x1b[1m\"bold\"\x1b[0m"

	tests := []struct {
		name     string
		input    string
		expected string
		spans    int
	}{
		{"ColoredTextUntouched", red + ` "q"`, red + " " + yellow(`"q"`), 1},
		{"ColoredGlyphsUntouched", "\x1b[31m[a-b]\x1b[0m", "\x1b[31m[a-b]\x1b[0m", 0},
		{"ColoredQuotesUntouched", bold + ` "q"`, bold + " " + yellow(`"q"`), 1},
		{"QuoteAcrossColoredText", `"a ` + red + ` b"`, `"a ` + red + ` b"`, 0},
		{"ResetOnly", "\x1b[0m\"q\"", "\x1b[0m" + yellow(`"q"`), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, spans := Highlighter{}.Scan(tc.input)
			if got != tc.expected {
				t.Errorf("Scan(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
			if len(spans) != tc.spans {
				t.Errorf("Scan(%q) recorded %d spans, expected %d", tc.input, len(spans), tc.spans)
			}
		})
	}
}

func TestHighlightTwice(t *testing.T) {
	forceColor(t)

	h := Highlighter{Keywords: []string{"equals"}}
	inputs := []string{
		`bad "thing" happened`,
		`"a-b" equals {c} "d`,
		`"a-equals" → "b"`,
		"\x1b[31mred\x1b[0m \"q\"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := h.Highlight(input)
			twice, spans := h.Scan(once)
			if twice != once {
				t.Errorf("second pass changed the output:\n first: %q\nsecond: %q", once, twice)
			}
			if len(spans) != 0 {
				t.Errorf("second pass recorded spans: %+v", spans)
			}
			if got, want := ui.StripANSI(twice), ui.StripANSI(input); got != want {
				t.Errorf("visible text = %q, expected %q", got, want)
			}
		})
	}
}

func TestQuotedRunKeepsYellowAroundGlyphs(t *testing.T) {
	forceColor(t)

	white := color.New(color.FgWhite, color.Bold).Sprint("-")
	got := Highlight(`"a-b"`)
	expected := yellow(`"a`) + white + yellow(`b"`)
	if got != expected {
		t.Errorf("Highlight() = %q, expected %q", got, expected)
	}
}

func TestSGRApply(t *testing.T) {
	tests := []struct {
		name   string
		start  sgr
		seq    string
		active bool
	}{
		{"Foreground", 0, "\x1b[33m", true},
		{"Reset", sgrForeground, "\x1b[0m", false},
		{"EmptyReset", sgrForeground, "\x1b[m", false},
		{"BoldAndFaintOff", sgrIntensity, "\x1b[22;22m", false},
		{"ForegroundOffKeepsBold", sgrIntensity | sgrForeground, "\x1b[39m", true},
		{"Palette", 0, "\x1b[38;5;208m", true},
		{"TrueColorThenReset", 0, "\x1b[38;2;1;2;3;0m", false},
		{"Background", 0, "\x1b[44m", true},
		{"Bright", 0, "\x1b[91m", true},
		{"NotSGR", sgrForeground, "\x1b[2K", true},
		{"OSC", 0, "\x1b]8;;http://x\x07", false},
		{"UnknownCode", 0, "\x1b[?25m", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.apply(tc.seq) != 0; got != tc.active {
				t.Errorf("apply(%q) active = %t, expected %t", tc.seq, got, tc.active)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	pieces := split("a\x1b[31mb\x1b[0mc")
	expected := []piece{
		{text: "a"},
		{text: "\x1b[31m", escape: true},
		{text: "b", styled: true},
		{text: "\x1b[0m", escape: true},
		{text: "c"},
	}
	if !slices.Equal(pieces, expected) {
		t.Errorf("split() = %+v, expected %+v", pieces, expected)
	}
}

func TestShift(t *testing.T) {
	spans := []Span{{0, 2}, {4, 5}, {8, 10}}
	got := shift(spans, 3, 6, 4)
	expected := []Span{{0, 2}, {12, 14}}
	if !slices.Equal(got, expected) {
		t.Errorf("shift() = %+v, expected %+v", got, expected)
	}
}
