package auth

import (
	"context"

	"github.com/induspriya/attendance-portal/internal/domain/user"
)

// Identity is the authenticated caller attached to a request context by the
// auth middleware after credential verification.
type Identity struct {
	UserID string
	Email  string
	Role   user.Role
}

// Verifier turns a bearer credential into an Identity. Implementations are
// selected by configuration: the JWT verifier in production, a static
// token table in tests. Selection never depends on token content.
type Verifier interface {
	VerifyCredential(ctx context.Context, token string) (Identity, error)
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller identity set by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
