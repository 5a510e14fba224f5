// Package identity holds the naming and case policy threaded through every
// formatting call.
//
// An Identity bundles a Name (identifier plus formal and informal display
// names) with three switches:
//
//   - Silent suppresses all output
//   - Uppercase renders header text in upper case
//   - Capitalize renders header text in title case (ignored when Uppercase is set)
//
// Nothing in this package is global. Build an Identity once at process start,
// either explicitly with New or from the environment with FromEnvironment,
// and pass it down:
//
//	id := identity.FromEnvironment()
//	id.Capitalize = true
//	printer := console.NewPrinter(os.Stdout, id)
//
// Hosts that keep per-request state can park an Identity in a
// context.Context (NewContext, FromContext) or in any key/value store that
// satisfies Storage (Load, Store).
package identity
