// Package ui provides color and style primitives for terminal output.
//
// Log lines are painted with a small fixed palette (see Color) and two
// style modifiers (see Style). Painting goes through fatih/color, so the
// usual switches apply: when NO_COLOR is set or the terminal doesn't
// support colors, Paint returns the text unchanged.
//
// # Painting
//
//	ui.Paint("ERROR", ui.Red, ui.Bold)   // red, bold
//	ui.Paint("{", ui.None, ui.Bold, ui.Dim) // style only, no color
//	ui.Paint(`"x"`, ui.Yellow)          // color only
//
// # Semantic Formatters
//
// CLI chrome that is not a log line uses the semantic formatters:
//
//	ui.Code.Sprint("herald log")   // Commands and code
//	ui.Highlight.Sprint("info")    // User values
//	ui.Muted.Sprint("optional")    // De-emphasized text
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration (self-evident from context)
package ui
