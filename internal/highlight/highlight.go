package highlight

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PolarWolf314/herald/internal/ui"
)

const quote = '"'

// Span is a half-open rune range [Start, End) of substituted text.
type Span struct {
	Start int
	End   int
}

// Contains reports whether rune index i lies inside s.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Covers reports whether o lies entirely inside s.
func (s Span) Covers(o Span) bool {
	return o.Start >= s.Start && o.End <= s.End
}

// Highlighter paints messages. Keywords are literal, case-sensitive
// candidates painted like quoted runs.
type Highlighter struct {
	Keywords []string
}

// Highlight runs both passes with no keywords.
func Highlight(message string) string {
	return Highlighter{}.Highlight(message)
}

// Highlight runs both passes over message.
func (h Highlighter) Highlight(message string) string {
	out, _ := h.Scan(message)
	return out
}

// Scan runs both passes and also returns the exclusion spans recorded by
// the quote pass, in rune indices of the returned string.
//
// Escape sequences already in message pass through untouched, and so does
// the text they style. A second Scan over the output leaves everything the
// first one painted alone.
func (h Highlighter) Scan(message string) (string, []Span) {
	return h.quotes(structural(message))
}

// Structural paints the structural glyphs of message one at a time,
// skipping escape sequences and the text they style.
func Structural(message string) string {
	out, _ := structural(message)
	return out
}

// structural paints the glyphs of unstyled text and returns the rune spans
// of the escapes and styled text that were already in message.
func structural(message string) (string, []Span) {
	var b strings.Builder
	b.Grow(len(message))
	var sealed []Span
	n := 0
	for _, p := range split(message) {
		if p.escape || p.styled {
			b.WriteString(p.text)
			start := n
			n += utf8.RuneCountInString(p.text)
			sealed = append(sealed, Span{Start: start, End: n})
			continue
		}
		for _, r := range p.text {
			glyph := paintGlyph(r)
			b.WriteString(glyph)
			n += utf8.RuneCountInString(glyph)
		}
	}
	return b.String(), sealed
}

func paintGlyph(r rune) string {
	switch r {
	case '⏎', '→':
		return ui.Paint(string(r), ui.White, ui.Bold)
	case '{', '}', '[', ']':
		return ui.Paint(string(r), ui.None, ui.Bold, ui.Dim)
	case '-', '—':
		return ui.Paint(string(r), ui.White, ui.Bold)
	default:
		return string(r)
	}
}

// fence holds the spans the quote pass never starts a match in. A quoted
// run may cross the escapes painted by the structural pass but never a
// sealed span, which is input that was already styled.
type fence struct {
	escapes []Span
	sealed  []Span
}

func (f *fence) holds(i int) bool {
	return excluded(f.escapes, i) || excluded(f.sealed, i)
}

func (f *fence) crosses(start, end int) bool {
	return crosses(f.escapes, start, end) || crosses(f.sealed, start, end)
}

// replaced moves the fence after [start, end) was replaced by n runes.
func (f *fence) replaced(start, end, n int) {
	f.escapes = shift(f.escapes, start, end, n-(end-start))
	f.sealed = shift(f.sealed, start, end, n-(end-start))
}

func (h Highlighter) quotes(message string, sealed []Span) (string, []Span) {
	buf := []rune(message)
	start := slices.Index(buf, quote)
	if start < 0 {
		return message, nil
	}

	f := &fence{escapes: escapeSpans(buf), sealed: sealed}
	var spans []Span
	for cursor := start; cursor < len(buf); {
		if excluded(spans, cursor) || f.holds(cursor) {
			cursor++
			continue
		}
		n := h.longestMatch(buf, cursor, spans, f)
		if n == 0 {
			cursor++
			continue
		}

		insert := []rune(paintRun(string(buf[cursor : cursor+n])))
		buf = slices.Replace(buf, cursor, cursor+n, insert...)
		f.replaced(cursor, cursor+n, len(insert))

		span := Span{Start: cursor, End: cursor + len(insert)}
		spans = append(supersede(spans, span), span)
		cursor = span.End
	}
	return string(buf), spans
}

// longestMatch returns the rune length of the longest candidate at i, or 0.
func (h Highlighter) longestMatch(buf []rune, i int, spans []Span, f *fence) int {
	best := 0
	if n := quotedRun(buf, i, spans, f); n > best {
		best = n
	}
	for _, word := range h.Keywords {
		w := []rune(word)
		end := i + len(w)
		if len(w) == 0 || end > len(buf) || len(w) <= best {
			continue
		}
		if crosses(spans, i, end) || f.crosses(i, end) {
			continue
		}
		if slices.Equal(buf[i:end], w) {
			best = len(w)
		}
	}
	return best
}

// quotedRun returns the length of the run from the quote at i through the
// next free quote, or 0. Quotes inside escapes are skipped and a sealed
// span ends the search.
func quotedRun(buf []rune, i int, spans []Span, f *fence) int {
	if buf[i] != quote {
		return 0
	}
	for j := i + 1; j < len(buf); j++ {
		if excluded(f.sealed, j) {
			return 0
		}
		if buf[j] == quote && !excluded(spans, j) && !excluded(f.escapes, j) {
			return j - i + 1
		}
	}
	return 0
}

// paintRun paints the unstyled text of a match yellow, leaving the glyphs
// painted by the structural pass as they are.
func paintRun(run string) string {
	var b strings.Builder
	for _, p := range split(run) {
		if p.escape || p.styled {
			b.WriteString(p.text)
			continue
		}
		b.WriteString(ui.Paint(p.text, ui.Yellow))
	}
	return b.String()
}

func excluded(spans []Span, i int) bool {
	for _, s := range spans {
		if s.Contains(i) {
			return true
		}
	}
	return false
}

// crosses reports whether [start, end) touches any span.
func crosses(spans []Span, start, end int) bool {
	for _, s := range spans {
		if start < s.End && s.Start < end {
			return true
		}
	}
	return false
}

// supersede drops leading spans covered by next, stopping at the first
// span it does not cover.
func supersede(spans []Span, next Span) []Span {
	drop := 0
	for _, s := range spans {
		if !next.Covers(s) {
			break
		}
		drop++
	}
	return spans[drop:]
}

// shift drops the spans inside [start, end) and moves the later ones by delta.
func shift(spans []Span, start, end, delta int) []Span {
	out := spans[:0]
	for _, s := range spans {
		switch {
		case s.End <= start:
			out = append(out, s)
		case s.Start >= end:
			out = append(out, Span{Start: s.Start + delta, End: s.End + delta})
		}
	}
	return out
}
