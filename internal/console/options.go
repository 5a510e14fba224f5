package console

import (
	"github.com/PolarWolf314/herald/internal/subject"
	"github.com/PolarWolf314/herald/internal/tag"
)

type options struct {
	separator  string
	terminator string
	subject    subject.Subject
	caller     bool
	parts      tag.Parts
}

func collect(opts []Option) options {
	o := options{
		separator:  " ",
		terminator: "\n",
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a single Emit.
type Option func(*options)

// WithSeparator sets the string placed between values. Default " ".
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithTerminator sets the string written after the line. Default "\n".
func WithTerminator(term string) Option {
	return func(o *options) { o.terminator = term }
}

// WithSubject sets the subject of the line.
func WithSubject(s subject.Subject) Option {
	return func(o *options) { o.subject = s }
}

// WithCallerSubject derives the subject from the calling source file when
// no explicit subject is set.
func WithCallerSubject() Option {
	return func(o *options) { o.caller = true }
}

// WithCategory sets the header segment before the subject.
func WithCategory(category string) Option {
	return func(o *options) { o.parts.Category = category }
}

// WithSubcategory sets the header segment after the subject.
func WithSubcategory(subcategory string) Option {
	return func(o *options) { o.parts.Subcategory = subcategory }
}

// WithPrefix is the fallback for an absent category.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.parts.Prefix = prefix }
}

// WithSuffix is the fallback for an absent subcategory.
func WithSuffix(suffix string) Option {
	return func(o *options) { o.parts.Suffix = suffix }
}
