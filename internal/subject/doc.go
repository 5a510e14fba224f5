// Package subject defines the symbolic tags that head each log line.
//
// A Subject is an open set: the constants below have fixed colors, and any
// other tag renders white. Tags may be path-like (a source file such as
// "internal/cache/cache.go"); Simplified reduces them to the base name
// ("cache") before any lookup.
//
// The tags "error" and "success" are reserved: they also recolor the message
// body red or green.
package subject
