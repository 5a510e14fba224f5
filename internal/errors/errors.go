package errors

import "errors"

// Subject errors indicate a caller passed an unusable subject tag.
var (
	// ErrEmptySubject indicates a subject reduced to an empty tag.
	ErrEmptySubject = errors.New("subject is empty")
)

// Configuration errors indicate a setting could not be interpreted.
var (
	// ErrInvalidSetting indicates an environment setting has an unparsable value.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrInvalidMode indicates an unknown message rendering mode.
	ErrInvalidMode = errors.New("invalid rendering mode")

	// ErrInvalidColorMode indicates an unknown --color value.
	ErrInvalidColorMode = errors.New("invalid color mode")
)

// Output errors indicate the sink failed.
var (
	// ErrWriteFailed indicates the output sink rejected a log line.
	ErrWriteFailed = errors.New("failed to write log line")
)
