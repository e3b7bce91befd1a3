package ports

import (
	"context"

	"github.com/clinicos/console/internal/core/domain"
)

// AuthService owns the login/session lifecycle. The cookie value returned by
// Login is an opaque signed handle; handlers set it verbatim and the gate
// passes it back to Current.
type AuthService interface {
	// Login authenticates against the backend and, on success, persists the
	// session and returns the signed cookie value. On failure nothing is
	// persisted.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Current resolves a cookie value to its stored session. Any failure —
	// bad signature, unknown sid, malformed blob — yields
	// domain.ErrSessionNotFound.
	Current(ctx context.Context, cookie string) (*domain.Session, error)
	// Logout destroys the stored session. Unknown cookies are a no-op.
	Logout(ctx context.Context, cookie string) error
}
