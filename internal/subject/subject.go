package subject

import (
	"fmt"
	"runtime"
	"strings"

	kerrors "github.com/PolarWolf314/herald/internal/errors"
)

// Subject is a symbolic tag such as "info" or "database".
// The zero value means no subject.
type Subject string

// Known subjects.
const (
	Info      Subject = "info"
	Database  Subject = "database"
	Error     Subject = "error"
	Success   Subject = "success"
	Session   Subject = "session"
	Queue     Subject = "queue"
	Service   Subject = "service"
	Test      Subject = "test"
	View      Subject = "view"
	Cache     Subject = "cache"
	Leaf      Subject = "leaf"
	Migration Subject = "migration"
	Command   Subject = "command"
)

// IsZero reports whether s is the absent subject.
func (s Subject) IsZero() bool {
	return s == ""
}

func (s Subject) String() string {
	return string(s)
}

// Simplified returns the last "/" segment of s cut at its first ".".
// It panics when nothing is left; use Parse for untrusted input.
func (s Subject) Simplified() Subject {
	simple, err := simplify(string(s))
	if err != nil {
		panic(err)
	}
	return simple
}

// Parse returns the simplified subject for raw, or ErrEmptySubject.
func Parse(raw string) (Subject, error) {
	return simplify(raw)
}

// Caller returns the subject for the source file skip frames above Caller.
func Caller(skip int) (Subject, bool) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", false
	}
	s, err := simplify(file)
	if err != nil {
		return "", false
	}
	return s, true
}

func simplify(raw string) (Subject, error) {
	segments := strings.FieldsFunc(raw, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return "", fmt.Errorf("simplifying %q: %w", raw, kerrors.ErrEmptySubject)
	}
	base := strings.FieldsFunc(segments[len(segments)-1], func(r rune) bool { return r == '.' })
	if len(base) == 0 {
		return "", fmt.Errorf("simplifying %q: %w", raw, kerrors.ErrEmptySubject)
	}
	return Subject(base[0]), nil
}
