package plog

import "context"

// contextKey is the type for context keys to avoid collisions
type contextKey struct{}

var registryKey contextKey

// NewContext returns a copy of ctx carrying r.
func NewContext(ctx context.Context, r *Registry) context.Context {
	if ctx == nil || r == nil {
		return ctx
	}
	return context.WithValue(ctx, registryKey, r)
}

// FromContext returns the registry carried by ctx, or Default().
func FromContext(ctx context.Context) *Registry {
	if ctx != nil {
		if r, ok := ctx.Value(registryKey).(*Registry); ok && r != nil {
			return r
		}
	}
	return Default()
}
