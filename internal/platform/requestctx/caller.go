// Package requestctx carries per-request metadata through context.
package requestctx

import "context"

// callerIDContextKey is the context key for the authenticated caller identity.
type callerIDContextKey struct{}

// WithCallerID stores an opaque caller identifier in context.
func WithCallerID(ctx context.Context, callerID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, callerIDContextKey{}, callerID)
}

// CallerIDFromContext returns the caller identifier stored in context.
func CallerIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(callerIDContextKey{}).(string)
	return value
}
