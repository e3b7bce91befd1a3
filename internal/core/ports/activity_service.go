package ports

import (
	"context"

	"github.com/clinicos/console/internal/core/domain"
)

// ActivityService serves the activity screen: the backend feed plus the
// console's own trail.
type ActivityService interface {
	Feed(ctx context.Context, limit int) ([]domain.ActivityItem, error)
	ConsoleTrail(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
