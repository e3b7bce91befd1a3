package ports

import (
	"context"
	"time"

	"github.com/clinicos/console/internal/core/domain"
)

// ScheduleWorkflowInput carries everything needed to register a future run.
// Token is the session bearer token; it is attached to the request when
// non-empty.
type ScheduleWorkflowInput struct {
	WorkflowID   string
	ScheduleTime time.Time
	Repeat       string
	Token        string
}

// Backend is the ClinicOS REST backend as seen by the console. Every
// operation takes the request context so an abandoned page load cancels the
// in-flight call, and every operation checks the response status: failures
// surface as *domain.BackendError.
type Backend interface {
	Info(ctx context.Context) (*domain.SystemInfo, error)
	Clients(ctx context.Context, limit int) ([]domain.Client, error)
	ClassifyClient(ctx context.Context, id string) (*domain.Classification, error)
	SegmentSummary(ctx context.Context) (*domain.SegmentSummary, error)
	Workflows(ctx context.Context) ([]domain.Workflow, error)
	RunWorkflow(ctx context.Context, id string) (*domain.WorkflowResult, error)
	ScheduleWorkflow(ctx context.Context, input ScheduleWorkflowInput) (*domain.ScheduledWorkflow, error)
	ScheduledWorkflows(ctx context.Context) ([]domain.ScheduledWorkflow, error)
	GenerateCopy(ctx context.Context, copyType, clientID string) (*domain.CopyResult, error)
	Activity(ctx context.Context, limit int) ([]domain.ActivityItem, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}
