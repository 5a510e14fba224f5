package identity

import "context"

// Key is the storage key under which an Identity is kept.
type Key struct{}

// Storage is a host-provided key/value store, such as an application or
// request container in a web framework.
type Storage interface {
	Get(key any) (any, bool)
	Set(key any, value any)
}

// Load returns the Identity kept in s, if any.
func Load(s Storage) (Identity, bool) {
	if s == nil {
		return Identity{}, false
	}
	v, ok := s.Get(Key{})
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// LoadOr returns the Identity kept in s, or fallback.
func LoadOr(s Storage, fallback Identity) Identity {
	if id, ok := Load(s); ok {
		return id
	}
	return fallback
}

// Store keeps id in s.
func Store(s Storage, id Identity) {
	s.Set(Key{}, id)
}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, Key{}, id)
}

// FromContext returns the Identity carried by ctx, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(Key{}).(Identity)
	return id, ok
}
