// Package requestid carries a per-request identifier through contexts.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header used to pass request ids in and out.
const Header = "X-Request-ID"

type ctxKey struct{}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From returns the request id stored in ctx, or "" when there is none.
func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Resolve keeps a caller-supplied id if it is a UUID and mints one otherwise.
func Resolve(incoming string) string {
	if _, err := uuid.Parse(incoming); err == nil && incoming != "" {
		return incoming
	}
	return uuid.New().String()
}
