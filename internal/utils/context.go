package utils

import "context"

type requestIDKey struct{}

// CtxWithRequestID returns a context carrying the request id for log
// correlation.
func CtxWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromCtx returns the request id from the context, or "".
func GetRequestIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
