package highlight

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PolarWolf314/herald/internal/ui"
)

// piece is a run of a message: an escape sequence, or text that is styled
// when an earlier SGR sequence left an attribute on.
type piece struct {
	text   string
	escape bool
	styled bool
}

// split cuts message at its escape sequences, tracking SGR state.
func split(message string) []piece {
	var pieces []piece
	var style sgr
	last := 0
	for _, loc := range ui.ANSIIndex(message) {
		if loc[0] > last {
			pieces = append(pieces, piece{text: message[last:loc[0]], styled: style != 0})
		}
		seq := message[loc[0]:loc[1]]
		pieces = append(pieces, piece{text: seq, escape: true})
		style = style.apply(seq)
		last = loc[1]
	}
	if last < len(message) {
		pieces = append(pieces, piece{text: message[last:], styled: style != 0})
	}
	return pieces
}

// escapeSpans returns the rune ranges of the escape sequences in buf.
func escapeSpans(buf []rune) []Span {
	s := string(buf)
	var spans []Span
	pos, runes := 0, 0
	for _, loc := range ui.ANSIIndex(s) {
		runes += utf8.RuneCountInString(s[pos:loc[0]])
		start := runes
		runes += utf8.RuneCountInString(s[loc[0]:loc[1]])
		spans = append(spans, Span{Start: start, End: runes})
		pos = loc[1]
	}
	return spans
}

// sgr is the set of display attributes left on by SGR sequences.
type sgr uint16

const (
	sgrIntensity sgr = 1 << iota
	sgrItalic
	sgrUnderline
	sgrBlink
	sgrInverse
	sgrHidden
	sgrStrike
	sgrForeground
	sgrBackground
)

// apply returns the state after seq. Sequences other than SGR leave it as is.
func (s sgr) apply(seq string) sgr {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return s
	}
	params := seq[2 : len(seq)-1]
	if params == "" {
		return 0
	}

	fields := strings.Split(params, ";")
	for i := 0; i < len(fields); i++ {
		field, _, _ := strings.Cut(fields[i], ":")
		code := 0
		if field != "" {
			n, err := strconv.Atoi(field)
			if err != nil {
				continue
			}
			code = n
		}

		switch {
		case code == 0:
			s = 0
		case code == 1 || code == 2:
			s |= sgrIntensity
		case code == 22:
			s &^= sgrIntensity
		case code == 3:
			s |= sgrItalic
		case code == 23:
			s &^= sgrItalic
		case code == 4 || code == 21:
			s |= sgrUnderline
		case code == 24:
			s &^= sgrUnderline
		case code == 5 || code == 6:
			s |= sgrBlink
		case code == 25:
			s &^= sgrBlink
		case code == 7:
			s |= sgrInverse
		case code == 27:
			s &^= sgrInverse
		case code == 8:
			s |= sgrHidden
		case code == 28:
			s &^= sgrHidden
		case code == 9:
			s |= sgrStrike
		case code == 29:
			s &^= sgrStrike
		case code >= 30 && code <= 37, code >= 90 && code <= 97:
			s |= sgrForeground
		case code == 38:
			s |= sgrForeground
			i += extendedColorLen(fields[i+1:])
		case code == 39:
			s &^= sgrForeground
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			s |= sgrBackground
		case code == 48:
			s |= sgrBackground
			i += extendedColorLen(fields[i+1:])
		case code == 49:
			s &^= sgrBackground
		}
	}
	return s
}

// extendedColorLen is the number of parameters after a 38 or 48 code:
// "5;n" for the 256-color palette, "2;r;g;b" for true color.
func extendedColorLen(rest []string) int {
	if len(rest) == 0 {
		return 0
	}
	switch rest[0] {
	case "5":
		return 2
	case "2":
		return 4
	}
	return 0
}
