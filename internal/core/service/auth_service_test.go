package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type stubBackend struct {
	ports.Backend

	loginFn    func(ctx context.Context, email, password string) (*domain.Session, error)
	clientsFn  func(ctx context.Context, limit int) ([]domain.Client, error)
	classifyFn func(ctx context.Context, id string) (*domain.Classification, error)
	infoFn     func(ctx context.Context) (*domain.SystemInfo, error)
	summaryFn  func(ctx context.Context) (*domain.SegmentSummary, error)
}

func (b *stubBackend) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return b.loginFn(ctx, email, password)
}

func (b *stubBackend) Clients(ctx context.Context, limit int) ([]domain.Client, error) {
	return b.clientsFn(ctx, limit)
}

func (b *stubBackend) ClassifyClient(ctx context.Context, id string) (*domain.Classification, error) {
	return b.classifyFn(ctx, id)
}

func (b *stubBackend) Info(ctx context.Context) (*domain.SystemInfo, error) {
	return b.infoFn(ctx)
}

func (b *stubBackend) SegmentSummary(ctx context.Context) (*domain.SegmentSummary, error) {
	return b.summaryFn(ctx)
}

type memorySessionRepo struct {
	sessions map[string]domain.Session
	saveErr  error
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *memorySessionRepo) Save(_ context.Context, sid string, session domain.Session, _ time.Duration) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.sessions[sid] = session
	return nil
}

func (r *memorySessionRepo) Find(_ context.Context, sid string) (*domain.Session, error) {
	session, ok := r.sessions[sid]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *memorySessionRepo) Delete(_ context.Context, sid string) error {
	delete(r.sessions, sid)
	return nil
}

type memoryAuditRepo struct {
	entries []domain.AuditEntry
}

func (r *memoryAuditRepo) Insert(_ context.Context, entry domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryAuditRepo) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func okBackend() *stubBackend {
	return &stubBackend{
		loginFn: func(_ context.Context, email, _ string) (*domain.Session, error) {
			return &domain.Session{
				Token: "backend-token",
				User:  domain.User{ID: "u1", Email: email, Name: "Admin", Role: "admin"},
			}, nil
		},
	}
}

func TestAuthService_Login_PersistsSession(t *testing.T) {
	sessions := newMemorySessionRepo()
	audit := &memoryAuditRepo{}
	svc := NewAuthService(okBackend(), sessions, audit, "secret", time.Hour, zerolog.Nop())

	cookie, session, err := svc.Login(context.Background(), "admin@clinicos.com", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if cookie == "" {
		t.Fatalf("expected signed cookie")
	}
	if !session.Valid() {
		t.Fatalf("expected valid session, got %+v", session)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected 1 stored session, got %d", len(sessions.sessions))
	}
	// Token and user are stored together in one value.
	for _, stored := range sessions.sessions {
		if stored.Token != "backend-token" || stored.User.ID != "u1" {
			t.Fatalf("stored session incomplete: %+v", stored)
		}
	}
	if len(audit.entries) != 1 || audit.entries[0].Type != domain.ActivityLogin {
		t.Fatalf("expected a login audit entry, got %+v", audit.entries)
	}
}

func TestAuthService_Login_BackendRejection(t *testing.T) {
	backend := &stubBackend{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			return nil, &domain.BackendError{Op: "login", StatusCode: http.StatusUnauthorized}
		},
	}
	sessions := newMemorySessionRepo()
	svc := NewAuthService(backend, sessions, &memoryAuditRepo{}, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "admin@clinicos.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("no session should be persisted after a failed login")
	}
}

func TestAuthService_Login_TransportFailurePassesThrough(t *testing.T) {
	cause := &domain.BackendError{Op: "login", Err: errors.New("connection refused")}
	backend := &stubBackend{
		loginFn: func(context.Context, string, string) (*domain.Session, error) {
			return nil, cause
		},
	}
	svc := NewAuthService(backend, newMemorySessionRepo(), &memoryAuditRepo{}, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "admin@clinicos.com", "admin123")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("transport failure must not read as bad credentials")
	}
	var be *domain.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(okBackend(), newMemorySessionRepo(), &memoryAuditRepo{}, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_CurrentRoundTrip(t *testing.T) {
	svc := NewAuthService(okBackend(), newMemorySessionRepo(), &memoryAuditRepo{}, "secret", time.Hour, zerolog.Nop())

	cookie, _, err := svc.Login(context.Background(), "admin@clinicos.com", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	session, err := svc.Current(context.Background(), cookie)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if session.User.Email != "admin@clinicos.com" {
		t.Fatalf("unexpected user: %+v", session.User)
	}
}

func TestAuthService_Current_BadCookie(t *testing.T) {
	svc := NewAuthService(okBackend(), newMemorySessionRepo(), &memoryAuditRepo{}, "secret", time.Hour, zerolog.Nop())

	for _, cookie := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Current(context.Background(), cookie); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("cookie %q: expected ErrSessionNotFound, got %v", cookie, err)
		}
	}
}

func TestAuthService_Current_WrongSecret(t *testing.T) {
	sessions := newMemorySessionRepo()
	minter := NewAuthService(okBackend(), sessions, &memoryAuditRepo{}, "secret-a", time.Hour, zerolog.Nop())
	verifier := NewAuthService(okBackend(), sessions, &memoryAuditRepo{}, "secret-b", time.Hour, zerolog.Nop())

	cookie, _, err := minter.Login(context.Background(), "admin@clinicos.com", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if _, err := verifier.Current(context.Background(), cookie); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for wrong secret, got %v", err)
	}
}

func TestAuthService_Logout_DestroysSession(t *testing.T) {
	sessions := newMemorySessionRepo()
	audit := &memoryAuditRepo{}
	svc := NewAuthService(okBackend(), sessions, audit, "secret", time.Hour, zerolog.Nop())

	cookie, _, err := svc.Login(context.Background(), "admin@clinicos.com", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), cookie); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("session should be destroyed on logout")
	}
	if _, err := svc.Current(context.Background(), cookie); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestAuthService_Logout_UnknownCookieIsNoop(t *testing.T) {
	svc := NewAuthService(okBackend(), newMemorySessionRepo(), &memoryAuditRepo{}, "secret", time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "not-a-cookie"); err != nil {
		t.Fatalf("unknown cookie should be a no-op, got %v", err)
	}
}
