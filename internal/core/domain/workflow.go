package domain

import "time"

// Workflow statuses as reported by the backend.
const (
	WorkflowStatusCompleted = "completed"
	WorkflowStatusPending   = "pending"
	WorkflowStatusError     = "error"
)

// Workflow is a named backend-executed automation definition.
type Workflow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WorkflowStep records one step of an executed workflow run.
type WorkflowStep struct {
	Name   string         `json:"name"`
	Status string         `json:"status"`
	Result map[string]any `json:"result,omitempty"`
}

// WorkflowResult is the outcome of a synchronous workflow run. Steps are
// ordered as executed.
type WorkflowResult struct {
	WorkflowID   string         `json:"workflow_id"`
	WorkflowName string         `json:"workflow_name"`
	Status       string         `json:"status"`
	StartedAt    time.Time      `json:"started_at"`
	CompletedAt  time.Time      `json:"completed_at"`
	Steps        []WorkflowStep `json:"steps"`
	Summary      map[string]any `json:"summary,omitempty"`
}

// Completed reports whether the run finished without error.
func (r WorkflowResult) Completed() bool {
	return r.Status == WorkflowStatusCompleted
}

// ScheduledWorkflow is a future run registered with the backend scheduler.
type ScheduledWorkflow struct {
	ID           string    `json:"id"`
	WorkflowID   string    `json:"workflow_id"`
	ScheduleTime time.Time `json:"schedule_time"`
	Repeat       string    `json:"repeat,omitempty"`
	Status       string    `json:"status"`
}

// Copy types accepted by the generator.
const (
	CopyTypeReengagement = "reengagement"
	CopyTypeBirthday     = "birthday"
	CopyTypePromotion    = "promotion"
)

// CopyResult is generated marketing text: a primary draft plus alternates.
type CopyResult struct {
	Content  string   `json:"content"`
	Variants []string `json:"variants"`
}
