package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type principalKey struct{}

var (
	traceIDKeyInstance   = traceIDKey{}
	principalKeyInstance = principalKey{}
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
	Role   string
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKeyInstance).(string)
	return traceID, ok
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKeyInstance, p)
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKeyInstance).(Principal)
	return p, ok
}

func GetUserID(ctx context.Context) (string, bool) {
	p, ok := GetPrincipal(ctx)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}

func GetUserRole(ctx context.Context) (string, bool) {
	p, ok := GetPrincipal(ctx)
	if !ok || p.Role == "" {
		return "", false
	}
	return p.Role, true
}
