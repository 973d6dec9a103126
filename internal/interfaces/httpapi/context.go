package httpapi

import (
	"context"

	"github.com/kazfoot/kpl-fantasy/internal/domain/user"
)

type contextKey string

const principalContextKey contextKey = "auth_principal"

// withPrincipal stores the verified caller for downstream handlers.
func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(user.Principal)
	return p, ok
}
