package ui

import "github.com/fatih/color"

// Color is a display color for painted text.
type Color int

const (
	// None leaves the foreground untouched.
	None Color = iota
	White
	Cyan
	Red
	Green
	Magenta
	Yellow
)

// Style is a modifier applied on top of a Color.
type Style int

const (
	Bold Style = iota + 1
	Dim
)

var colorAttributes = map[Color]color.Attribute{
	White:   color.FgWhite,
	Cyan:    color.FgCyan,
	Red:     color.FgRed,
	Green:   color.FgGreen,
	Magenta: color.FgMagenta,
	Yellow:  color.FgYellow,
}

var styleAttributes = map[Style]color.Attribute{
	Bold: color.Bold,
	Dim:  color.Faint,
}

var colorNames = map[Color]string{
	None:    "none",
	White:   "white",
	Cyan:    "cyan",
	Red:     "red",
	Green:   "green",
	Magenta: "magenta",
	Yellow:  "yellow",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Attributes returns the fatih/color attributes for c and styles, color first.
func Attributes(c Color, styles ...Style) []color.Attribute {
	attrs := make([]color.Attribute, 0, len(styles)+1)
	if attr, ok := colorAttributes[c]; ok {
		attrs = append(attrs, attr)
	}
	for _, s := range styles {
		if attr, ok := styleAttributes[s]; ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// Paint wraps text in the escape sequences for c and styles.
// Text is returned unchanged when colors are disabled or nothing applies.
func Paint(text string, c Color, styles ...Style) string {
	if text == "" || !Enabled() {
		return text
	}
	attrs := Attributes(c, styles...)
	if len(attrs) == 0 {
		return text
	}
	return color.New(attrs...).Sprint(text)
}
