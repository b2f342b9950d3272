package httputils

import (
	"context"

	"bloglist/internal/domain/models"
)

type ctxKey int

const identityKey ctxKey = iota

func ContextWithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity set by the auth middleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey).(models.Identity)
	return id, ok && id.UserID != ""
}
