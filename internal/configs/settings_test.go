package configs

import (
	"errors"
	"testing"

	"github.com/PolarWolf314/herald/internal/console"
	kerrors "github.com/PolarWolf314/herald/internal/errors"
	"github.com/PolarWolf314/herald/internal/identity"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadSettingsEmpty(t *testing.T) {
	s, err := LoadSettings(lookupFrom(nil))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Silent != nil || s.Uppercase != nil || s.Capitalize != nil || s.Mode != nil {
		t.Errorf("expected no settings, got %+v", s)
	}

	base := identity.New(identity.NewName("a.b", "B", ""))
	if got := s.Apply(base); got != base {
		t.Errorf("Apply() with no settings changed identity: %+v", got)
	}
	if got := s.ModeOr(console.ModeFlat); got != console.ModeFlat {
		t.Errorf("ModeOr() = %v, expected fallback", got)
	}
}

func TestLoadSettingsAll(t *testing.T) {
	s, err := LoadSettings(lookupFrom(map[string]string{
		EnvSilent:     "true",
		EnvUppercase:  "0",
		EnvCapitalize: "1",
		EnvMode:       "flat",
		EnvIdentifier: " ci.runner ",
		EnvName:       "Runner",
	}))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	id := s.Apply(identity.New(identity.NewName("a.b", "B", "")))
	if !id.Silent || id.Uppercase || !id.Capitalize {
		t.Errorf("unexpected switches: %+v", id)
	}
	if id.Identifier() != "ci.runner" || id.Formal() != "Runner" || id.Informal() != "runner" {
		t.Errorf("unexpected name: %+v", id.Name)
	}
	if got := s.ModeOr(console.ModeHighlight); got != console.ModeFlat {
		t.Errorf("ModeOr() = %v, expected flat", got)
	}
}

func TestLoadSettingsBlankBoolIsUnset(t *testing.T) {
	s, err := LoadSettings(lookupFrom(map[string]string{EnvSilent: "  "}))
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.Silent != nil {
		t.Errorf("blank %s should be unset", EnvSilent)
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"BadBool", map[string]string{EnvUppercase: "yes please"}, kerrors.ErrInvalidSetting},
		{"BadCapitalize", map[string]string{EnvCapitalize: "maybe"}, kerrors.ErrInvalidSetting},
		{"BadMode", map[string]string{EnvMode: "rainbow"}, kerrors.ErrInvalidMode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSettings(lookupFrom(tc.env))
			if !errors.Is(err, tc.want) {
				t.Errorf("LoadSettings() error = %v, expected %v", err, tc.want)
			}
		})
	}
}
