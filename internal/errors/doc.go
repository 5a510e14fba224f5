// Package errors provides typed error values for herald.
//
// Most malformed input is not an error at all: an empty message, an unknown
// subject or an unterminated quote resolves to a no-op or a default. The
// values here cover what is left, so callers can use errors.Is() rather
// than string matching.
//
// # Error Categories
//
//   - Subject errors: a subject that reduces to nothing (ErrEmptySubject)
//   - Configuration errors: unparsable settings (ErrInvalidSetting, ErrInvalidMode)
//   - Output errors: the sink rejected a write (ErrWriteFailed)
//
// # Usage
//
//	s, err := subject.Parse(raw)
//	if errors.Is(err, kerrors.ErrEmptySubject) {
//	    // fall back to no header
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("parsing %s: %w", key, errors.ErrInvalidSetting)
package errors
