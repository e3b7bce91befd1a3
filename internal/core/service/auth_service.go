package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/api/metrics"
	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// AuthService implements the console login/session lifecycle. Credentials
// are verified by the backend; the console only persists the resulting
// token+user pair and hands the browser a signed cookie referencing it.
type AuthService struct {
	backend  ports.Backend
	sessions ports.SessionRepository
	audit    ports.AuditRepository
	secret   []byte
	ttl      time.Duration
	log      zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(backend ports.Backend, sessions ports.SessionRepository, audit ports.AuditRepository, secret string, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		audit:    audit,
		secret:   []byte(secret),
		ttl:      ttl,
		log:      log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	session, err := s.backend.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// Any rejection status reads as bad credentials; the cause is never
		// surfaced to the user. Transport failures pass through so the
		// caller can say "connection failed" instead.
		var be *domain.BackendError
		if errors.As(err, &be) && be.StatusCode != 0 {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !session.Valid() {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, *session, s.ttl); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, err
	}

	cookie, err := s.signCookie(sid)
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.ActiveSessionsCreated.Inc()
	s.log.Info().Str("user_id", session.User.ID).Msg("user logged in")
	recordAudit(ctx, s.audit, s.log, domain.ActivityLogin, "Signed in", session.User.Email+" signed in to the console", domain.ActivitySuccess, session.User.Email)

	return cookie, session, nil
}

func (s *AuthService) Current(ctx context.Context, cookie string) (*domain.Session, error) {
	sid, err := s.verifyCookie(cookie)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	return s.sessions.Find(ctx, sid)
}

func (s *AuthService) Logout(ctx context.Context, cookie string) error {
	sid, err := s.verifyCookie(cookie)
	if err != nil {
		// Nothing to destroy; the cookie was never one of ours.
		return nil
	}

	session, _ := s.sessions.Find(ctx, sid)
	if err := s.sessions.Delete(ctx, sid); err != nil {
		return err
	}

	actor := ""
	if session != nil {
		actor = session.User.Email
	}
	recordAudit(ctx, s.audit, s.log, domain.ActivityLogout, "Signed out", actor+" signed out of the console", domain.ActivitySuccess, actor)
	return nil
}

// signCookie mints the browser-facing session handle: an HS256 JWT carrying
// only the session id. The session content itself never leaves Redis.
func (s *AuthService) signCookie(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AuthService) verifyCookie(cookie string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
