package validation

import "context"

type ignoreIDKey struct{}

// WithIgnoreID marks the record being updated so unique rules skip it.
func WithIgnoreID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, ignoreIDKey{}, id)
}

func ignoreIDFromContext(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(ignoreIDKey{}).(uint64)
	return id
}
