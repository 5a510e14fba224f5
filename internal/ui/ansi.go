package ui

import "regexp"

// ansiSequence matches an OSC (ESC ] ... BEL or ST) or CSI (ESC [ ... command)
// escape sequence.
var ansiSequence = regexp.MustCompile(`\x1b\][^\x07]*(?:\x07|\x1b\\)|\x1b\[[0-?]*[ -/]*[@-~]`)

// StripANSI removes terminal escape sequences, leaving the visible text.
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

// ANSIIndex returns the byte ranges of the escape sequences in s, in order.
// Each range is a [start, end) pair.
func ANSIIndex(s string) [][]int {
	return ansiSequence.FindAllStringIndex(s, -1)
}
