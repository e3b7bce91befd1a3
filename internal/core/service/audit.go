package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// recordAudit appends one entry to the console trail. Auditing is
// best-effort: a failed insert is logged and never fails the action itself.
func recordAudit(ctx context.Context, repo ports.AuditRepository, log zerolog.Logger, kind, title, description, status, actor string) {
	entry := domain.AuditEntry{
		ID:          uuid.NewString(),
		Type:        kind,
		Title:       title,
		Description: description,
		Status:      status,
		Actor:       actor,
		CreatedAt:   time.Now().UTC(),
	}
	if err := repo.Insert(ctx, entry); err != nil {
		log.Warn().Err(err).Str("type", kind).Msg("failed to record audit entry")
	}
}
