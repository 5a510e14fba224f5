// Package highlight recolors a log message before it is printed.
//
// Highlighting runs two passes:
//
//   - The structural pass paints single glyphs: "⏎" and "→" white and bold,
//     brackets "{ } [ ]" bold and dim, "-" and "—" white and bold.
//   - The quote pass paints quoted runs (and optional literal keywords)
//     yellow.
//
// The quote pass splices escape sequences into the buffer it is scanning.
// To avoid matching its own output it records every inserted run as an
// exclusion Span and never scans inside one again. Scan exposes those spans.
package highlight
