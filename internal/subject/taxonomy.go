package subject

import "github.com/PolarWolf314/herald/internal/ui"

// Entry pairs a known subject with its display color.
type Entry struct {
	Subject Subject
	Color   ui.Color
}

var taxonomy = []Entry{
	{Info, ui.Cyan},
	{Database, ui.Cyan},
	{Error, ui.Red},
	{Session, ui.Red},
	{Queue, ui.Red},
	{Service, ui.Red},
	{Test, ui.Green},
	{View, ui.Green},
	{Cache, ui.Green},
	{Leaf, ui.Green},
	{Migration, ui.Magenta},
	{Command, ui.Yellow},
	{Success, ui.White},
}

var colors = func() map[Subject]ui.Color {
	m := make(map[Subject]ui.Color, len(taxonomy))
	for _, e := range taxonomy {
		m[e.Subject] = e.Color
	}
	return m
}()

// ColorOf returns the header color for s. Unknown tags are white.
// Lookup is exact; simplify path-like tags first.
func ColorOf(s Subject) ui.Color {
	if c, ok := colors[s]; ok {
		return c
	}
	return ui.White
}

// MessageColor returns the body color override for s.
func MessageColor(s Subject) ui.Color {
	switch s {
	case Error:
		return ui.Red
	case Success:
		return ui.Green
	default:
		return ui.White
	}
}

// Known lists the subjects with a fixed color, in table order.
func Known() []Entry {
	out := make([]Entry, len(taxonomy))
	copy(out, taxonomy)
	return out
}
