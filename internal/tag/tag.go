// Package tag renders the bracketed header that opens a log line.
package tag

import (
	"strings"

	"github.com/PolarWolf314/herald/internal/identity"
	"github.com/PolarWolf314/herald/internal/subject"
	"github.com/PolarWolf314/herald/internal/ui"
)

// Parts are the optional pieces around the subject in a header.
// Category wins over Prefix and Subcategory wins over Suffix.
// Empty strings count as absent.
type Parts struct {
	Category    string
	Subcategory string
	Prefix      string
	Suffix      string
}

// IsZero reports whether no part is set.
func (p Parts) IsZero() bool {
	return p == Parts{}
}

// Leading returns Category, or Prefix when Category is empty.
func (p Parts) Leading() string {
	if p.Category != "" {
		return p.Category
	}
	return p.Prefix
}

// Trailing returns Subcategory, or Suffix when Subcategory is empty.
func (p Parts) Trailing() string {
	if p.Subcategory != "" {
		return p.Subcategory
	}
	return p.Suffix
}

// Render returns the header for s, or "" for the zero subject.
//
//	[ INFO ]           no parts
//	[ LAYER1CACHE HIT ] Category "layer1", Subcategory "hit"
//
// Every segment is cased by id and painted in the subject's color. All
// segments are bold except the trailing one.
func Render(s subject.Subject, id identity.Identity, parts Parts) string {
	if s.IsZero() {
		return ""
	}
	simple := s.Simplified()
	c := subject.ColorOf(simple)
	name := id.Transform(strings.ToUpper(simple.String()))

	if parts.IsZero() {
		return "[ " + ui.Paint(name, c, ui.Bold) + " ]"
	}

	var b strings.Builder
	b.WriteString("[ ")
	b.WriteString(ui.Paint(id.Transform(parts.Leading()), c, ui.Bold))
	b.WriteString(ui.Paint(name, c, ui.Bold))
	if trailing := parts.Trailing(); trailing != "" {
		b.WriteString(ui.Paint(" "+id.Transform(trailing), c))
	}
	b.WriteString(" ]")
	return b.String()
}
