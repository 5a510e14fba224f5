// Package utils provides shared utility functions for herald.
//
// This package contains general-purpose helpers used across multiple packages.
//
// # System Utilities
//
// Functions for interacting with the operating system:
//   - GetUsername: returns the current system login name
//   - GetFullName: returns the current user's display name
//   - ProcessName: returns the running executable's base name
//   - DottedIdentifier: joins name words into a lowercase dotted form
//
// # Terminal Utilities
//
// Functions for terminal detection:
//   - IsTerminal: checks if a file is attached to a terminal
package utils
