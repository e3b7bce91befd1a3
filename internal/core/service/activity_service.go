package service

import (
	"context"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// ActivityService serves the activity screen.
type ActivityService struct {
	backend ports.Backend
	audit   ports.AuditRepository
}

var _ ports.ActivityService = (*ActivityService)(nil)

func NewActivityService(backend ports.Backend, audit ports.AuditRepository) *ActivityService {
	return &ActivityService{backend: backend, audit: audit}
}

// Feed returns the backend activity feed; ordering is server-determined.
func (s *ActivityService) Feed(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	return s.backend.Activity(ctx, limit)
}

// ConsoleTrail returns the console's own recent actions, newest first.
func (s *ActivityService) ConsoleTrail(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return s.audit.Recent(ctx, limit)
}
