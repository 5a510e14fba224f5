package identity

import "strings"

// Name identifies the program that is logging.
type Name struct {
	// Identifier is a dotted, machine-friendly name such as "jane.doe.herald".
	Identifier string
	// Formal is the display name, usually the process name.
	Formal string
	// Informal is the casual display name, usually the lowercase formal name.
	Informal string
}

// NewName returns a Name, deriving an empty informal name from formal.
func NewName(identifier, formal, informal string) Name {
	if informal == "" {
		informal = strings.ToLower(formal)
	}
	return Name{
		Identifier: identifier,
		Formal:     formal,
		Informal:   informal,
	}
}
