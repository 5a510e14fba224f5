package console

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/herald/internal/errors"
)

// Mode selects how the message body is painted.
type Mode int

const (
	// ModeHighlight highlights glyphs and quoted runs, then paints the body.
	ModeHighlight Mode = iota
	// ModeFlat paints the whole body in the message color.
	ModeFlat
)

func (m Mode) String() string {
	switch m {
	case ModeHighlight:
		return "highlight"
	case ModeFlat:
		return "flat"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "highlight" or "flat", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highlight", "":
		return ModeHighlight, nil
	case "flat":
		return ModeFlat, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, kerrors.ErrInvalidMode)
	}
}

// Result tells what an Emit did.
type Result int

const (
	// Written means a line went to the sink.
	Written Result = iota + 1
	// Silenced means the Identity suppressed output.
	Silenced
	// Empty means the joined message was blank.
	Empty
)

func (r Result) String() string {
	switch r {
	case Written:
		return "written"
	case Silenced:
		return "silenced"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}
