package ports

import (
	"context"

	"github.com/clinicos/console/internal/core/domain"
)

// AuditRepository persists the console's own action trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
