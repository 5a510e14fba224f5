package configs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PolarWolf314/herald/internal/console"
	kerrors "github.com/PolarWolf314/herald/internal/errors"
	"github.com/PolarWolf314/herald/internal/identity"
)

// Environment variable names.
const (
	EnvSilent     = "HERALD_SILENT"
	EnvUppercase  = "HERALD_UPPERCASE"
	EnvCapitalize = "HERALD_CAPITALIZE"
	EnvMode       = "HERALD_MODE"
	EnvIdentifier = "HERALD_IDENTIFIER"
	EnvName       = "HERALD_NAME"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Settings are the values found in the environment. Nil fields were unset.
type Settings struct {
	Silent     *bool
	Uppercase  *bool
	Capitalize *bool
	Mode       *console.Mode
	Identifier string
	Name       string
}

// LoadSettings reads every HERALD_* variable through lookup.
func LoadSettings(lookup LookupFunc) (Settings, error) {
	var s Settings
	var err error

	if s.Silent, err = lookupBool(lookup, EnvSilent); err != nil {
		return Settings{}, err
	}
	if s.Uppercase, err = lookupBool(lookup, EnvUppercase); err != nil {
		return Settings{}, err
	}
	if s.Capitalize, err = lookupBool(lookup, EnvCapitalize); err != nil {
		return Settings{}, err
	}

	if raw, ok := lookup(EnvMode); ok {
		mode, err := console.ParseMode(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", EnvMode, err)
		}
		s.Mode = &mode
	}

	if raw, ok := lookup(EnvIdentifier); ok {
		s.Identifier = strings.TrimSpace(raw)
	}
	if raw, ok := lookup(EnvName); ok {
		s.Name = strings.TrimSpace(raw)
	}

	return s, nil
}

// Apply overlays the settings that were set onto id.
func (s Settings) Apply(id identity.Identity) identity.Identity {
	if s.Silent != nil {
		id.Silent = *s.Silent
	}
	if s.Uppercase != nil {
		id.Uppercase = *s.Uppercase
	}
	if s.Capitalize != nil {
		id.Capitalize = *s.Capitalize
	}
	if s.Identifier != "" {
		id.SetIdentifier(s.Identifier)
	}
	if s.Name != "" {
		id.SetFormal(s.Name)
		id.SetInformal(strings.ToLower(s.Name))
	}
	return id
}

// ModeOr returns the configured mode, or fallback.
func (s Settings) ModeOr(fallback console.Mode) console.Mode {
	if s.Mode != nil {
		return *s.Mode
	}
	return fallback
}

func lookupBool(lookup LookupFunc, key string) (*bool, error) {
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing %s=%q: %w", key, raw, kerrors.ErrInvalidSetting)
	}
	return &v, nil
}
