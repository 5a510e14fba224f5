package identity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CasePolicy is the text transform applied to header segments.
type CasePolicy int

const (
	// AsIs leaves text unchanged.
	AsIs CasePolicy = iota
	// Capitalized title-cases each word.
	Capitalized
	// Uppercased upper-cases everything.
	Uppercased
)

func (p CasePolicy) String() string {
	switch p {
	case Capitalized:
		return "capitalize"
	case Uppercased:
		return "uppercase"
	default:
		return "as-is"
	}
}

// Identity is the per-process naming and output policy.
type Identity struct {
	Name       Name
	Silent     bool
	Uppercase  bool
	Capitalize bool
}

// New returns a loud, upper-casing Identity for name.
func New(name Name) Identity {
	return Identity{
		Name:      name,
		Uppercase: true,
	}
}

// FromEnvironment returns New(CurrentName()).
func FromEnvironment() Identity {
	return New(CurrentName())
}

// Identifier returns Name.Identifier.
func (id Identity) Identifier() string { return id.Name.Identifier }

// SetIdentifier sets Name.Identifier.
func (id *Identity) SetIdentifier(v string) { id.Name.Identifier = v }

// Formal returns Name.Formal.
func (id Identity) Formal() string { return id.Name.Formal }

// SetFormal sets Name.Formal.
func (id *Identity) SetFormal(v string) { id.Name.Formal = v }

// Informal returns Name.Informal.
func (id Identity) Informal() string { return id.Name.Informal }

// SetInformal sets Name.Informal.
func (id *Identity) SetInformal(v string) { id.Name.Informal = v }

// CasePolicy resolves the case switches. Uppercase wins over Capitalize.
func (id Identity) CasePolicy() CasePolicy {
	switch {
	case id.Uppercase:
		return Uppercased
	case id.Capitalize:
		return Capitalized
	default:
		return AsIs
	}
}

// Transform applies the case policy to s.
func (id Identity) Transform(s string) string {
	switch id.CasePolicy() {
	case Uppercased:
		return strings.ToUpper(s)
	case Capitalized:
		// A Caser holds state; build one per call.
		return cases.Title(language.Und).String(s)
	default:
		return s
	}
}
