package notification

import "context"

type centerKey struct{}

// WithCenter opens a provider scope: handlers below ctx share c.
func WithCenter(ctx context.Context, c *Center) context.Context {
	return context.WithValue(ctx, centerKey{}, c)
}

// FromContext returns the center of the enclosing provider scope.
// Calling it outside such a scope is a wiring bug and panics.
func FromContext(ctx context.Context) *Center {
	c, ok := ctx.Value(centerKey{}).(*Center)
	if !ok || c == nil {
		panic("notification: FromContext used outside its provider scope; wrap the context with WithCenter")
	}
	return c
}

// Lookup is FromContext for callers that can degrade without a center
func Lookup(ctx context.Context) (*Center, bool) {
	c, ok := ctx.Value(centerKey{}).(*Center)
	return c, ok && c != nil
}
