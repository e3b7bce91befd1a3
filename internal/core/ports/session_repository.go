package ports

import (
	"context"
	"time"

	"github.com/clinicos/console/internal/core/domain"
)

// SessionRepository persists the token+user pair under an opaque session id.
// Implementations must store both halves as one value so a session is never
// half-written; a missing or malformed value is reported as
// domain.ErrSessionNotFound.
type SessionRepository interface {
	Save(ctx context.Context, sid string, session domain.Session, ttl time.Duration) error
	Find(ctx context.Context, sid string) (*domain.Session, error)
	Delete(ctx context.Context, sid string) error
}
