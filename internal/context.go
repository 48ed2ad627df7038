package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextIdentityKey ctxKey = "identity"

// Role values. Admins hold full rights on every resource kind; techs are
// scoped to resources they own.
const (
	RoleAdmin = "admin"
	RoleTech  = "tech"
)

// Identity is the verified snapshot of a user carried by a session token.
// It is trusted as-is for the life of the token: role or name changes made
// by an admin do not reach already-issued tokens until re-authentication.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanModify is the central ownership predicate: admins may modify anything,
// everyone else only resources they created.
func (i *Identity) CanModify(ownerID string) bool {
	return i.IsAdmin() || i.ID == ownerID
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if ctx == nil {
		return nil, false
	}
	ident, ok := ctx.Value(contextIdentityKey).(*Identity)
	return ident, ok
}

func ContextWithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, contextIdentityKey, ident)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
