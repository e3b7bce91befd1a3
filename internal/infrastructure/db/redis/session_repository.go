package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// SessionRepository stores each session as one JSON blob under
// session:<sid>. Token and user live in the same value, so the pair is
// written and cleared atomically — the store can never hold one without the
// other.
type SessionRepository struct {
	client *redis.Client
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a SessionRepository wrapping the given client.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func (r *SessionRepository) Save(ctx context.Context, sid string, session domain.Session, ttl time.Duration) error {
	raw, err := domain.EncodeSession(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, r.key(sid), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Find loads and decodes the session. A missing key or a malformed blob both
// read as "logged out": domain.ErrSessionNotFound.
func (r *SessionRepository) Find(ctx context.Context, sid string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, r.key(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return domain.DecodeSession(raw)
}

func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, r.key(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(sid string) string {
	return "session:" + sid
}
