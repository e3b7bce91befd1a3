package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/api/metrics"
	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// AutomationService serves the workflows and copy-generator screens. Runs
// are synchronous from the console's perspective: the backend executes every
// step before responding.
type AutomationService struct {
	backend ports.Backend
	audit   ports.AuditRepository
	log     zerolog.Logger
}

var _ ports.AutomationService = (*AutomationService)(nil)

func NewAutomationService(backend ports.Backend, audit ports.AuditRepository, log zerolog.Logger) *AutomationService {
	return &AutomationService{backend: backend, audit: audit, log: log}
}

func (s *AutomationService) Catalog(ctx context.Context) ([]domain.Workflow, error) {
	return s.backend.Workflows(ctx)
}

func (s *AutomationService) Scheduled(ctx context.Context) ([]domain.ScheduledWorkflow, error) {
	return s.backend.ScheduledWorkflows(ctx)
}

func (s *AutomationService) Run(ctx context.Context, workflowID, actor string) (*domain.WorkflowResult, error) {
	result, err := s.backend.RunWorkflow(ctx, workflowID)
	if err != nil {
		metrics.WorkflowRunsTotal.WithLabelValues(workflowID, "error").Inc()
		recordAudit(ctx, s.audit, s.log, domain.ActivityWorkflow, "Workflow Run",
			fmt.Sprintf("Run of %s failed", workflowID), domain.ActivityError, actor)
		return nil, err
	}

	metrics.WorkflowRunsTotal.WithLabelValues(workflowID, result.Status).Inc()

	status := domain.ActivitySuccess
	if !result.Completed() {
		status = domain.ActivityError
	}
	recordAudit(ctx, s.audit, s.log, domain.ActivityWorkflow, result.WorkflowName,
		fmt.Sprintf("Ran %s, finished %s with %d steps", result.WorkflowName, result.Status, len(result.Steps)),
		status, actor)

	s.log.Info().
		Str("workflow_id", workflowID).
		Str("status", result.Status).
		Int("steps", len(result.Steps)).
		Msg("workflow executed")

	return result, nil
}

func (s *AutomationService) Schedule(ctx context.Context, req ports.ScheduleRequest, session *domain.Session) (*domain.ScheduledWorkflow, error) {
	input := ports.ScheduleWorkflowInput{
		WorkflowID:   req.WorkflowID,
		ScheduleTime: req.ScheduleTime,
		Repeat:       req.Repeat,
	}
	// Bearer auth is optional on the schedule endpoint; attach the session
	// token when one exists.
	actor := ""
	if session != nil {
		input.Token = session.Token
		actor = session.User.Email
	}

	scheduled, err := s.backend.ScheduleWorkflow(ctx, input)
	if err != nil {
		recordAudit(ctx, s.audit, s.log, domain.ActivitySchedule, "Workflow Schedule",
			fmt.Sprintf("Scheduling %s failed", req.WorkflowID), domain.ActivityError, actor)
		return nil, err
	}

	recordAudit(ctx, s.audit, s.log, domain.ActivitySchedule, "Workflow Scheduled",
		fmt.Sprintf("Scheduled %s for %s", req.WorkflowID, req.ScheduleTime.Format("2006-01-02 15:04")),
		domain.ActivitySuccess, actor)

	return scheduled, nil
}

func (s *AutomationService) GenerateCopy(ctx context.Context, copyType, clientID, actor string) (*domain.CopyResult, error) {
	result, err := s.backend.GenerateCopy(ctx, copyType, clientID)
	if err != nil {
		return nil, err
	}

	metrics.CopyGenerationsTotal.WithLabelValues(copyType).Inc()
	recordAudit(ctx, s.audit, s.log, domain.ActivityCopy, "Copy Generated",
		fmt.Sprintf("Generated %s copy with %d variants", copyType, len(result.Variants)),
		domain.ActivitySuccess, actor)

	return result, nil
}
