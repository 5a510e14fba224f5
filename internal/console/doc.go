// Package console emits herald log lines.
//
// A Printer joins the values it is given, renders a header for the subject,
// paints the message and writes the whole line to its sink in a single
// Write:
//
//	p := console.NewPrinter(os.Stdout, identity.FromEnvironment())
//	p.Emit([]any{"cache warmed in", 42, "ms"},
//		console.WithSubject(subject.Cache),
//		console.WithCategory("layer1"))
//
// produces "[ LAYER1CACHE ] cache warmed in 42 ms" followed by a newline.
//
// # Rendering Modes
//
// ModeHighlight (the default) runs the message through package highlight and
// then paints it with the subject's message color. ModeFlat skips
// highlighting and paints the whole message in that one color.
//
// # No-ops
//
// Nothing is written, and Emit reports why, when the Identity is silent
// (Silenced) or the joined message is blank (Empty).
//
// A Printer keeps no state between calls. When several goroutines share a
// sink, wrap it with NewSyncWriter.
package console
