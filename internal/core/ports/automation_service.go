package ports

import (
	"context"
	"time"

	"github.com/clinicos/console/internal/core/domain"
)

// ScheduleRequest is the validated schedule form.
type ScheduleRequest struct {
	WorkflowID   string
	ScheduleTime time.Time
	Repeat       string
}

// AutomationService serves the workflows and copy-generator screens. All
// mutations are recorded in the console trail.
type AutomationService interface {
	Catalog(ctx context.Context) ([]domain.Workflow, error)
	Scheduled(ctx context.Context) ([]domain.ScheduledWorkflow, error)
	Run(ctx context.Context, workflowID, actor string) (*domain.WorkflowResult, error)
	Schedule(ctx context.Context, req ScheduleRequest, session *domain.Session) (*domain.ScheduledWorkflow, error)
	GenerateCopy(ctx context.Context, copyType, clientID, actor string) (*domain.CopyResult, error)
}
