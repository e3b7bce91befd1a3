package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/api/middleware"
	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// scheduleTimeLayout matches the browser's datetime-local input format.
const scheduleTimeLayout = "2006-01-02T15:04"

type WorkflowsHandler struct {
	automation ports.AutomationService
	log        zerolog.Logger
}

func NewWorkflowsHandler(automation ports.AutomationService, log zerolog.Logger) *WorkflowsHandler {
	return &WorkflowsHandler{automation: automation, log: log}
}

type workflowsView struct {
	pageShell
	Error       string
	Notice      string
	Workflows   []domain.Workflow
	Scheduled   []domain.ScheduledWorkflow
	Result      *domain.WorkflowResult
	SummaryJSON string
}

// Page renders the workflow catalog and scheduled runs.
func (h *WorkflowsHandler) Page(c echo.Context) error {
	view := h.load(c, "")
	return c.Render(http.StatusOK, "workflows", view)
}

// Run executes one workflow synchronously and renders its result block: the
// backend finishes every step before responding.
func (h *WorkflowsHandler) Run(c echo.Context) error {
	view := h.load(c, "")

	result, err := h.automation.Run(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "workflows", view)
	}

	view.Result = result
	if len(result.Summary) > 0 {
		if raw, err := json.MarshalIndent(result.Summary, "", "  "); err == nil {
			view.SummaryJSON = string(raw)
		}
	}
	return c.Render(http.StatusOK, "workflows", view)
}

type scheduleForm struct {
	ScheduleTime string `form:"schedule_time" validate:"required"`
	Repeat       string `form:"repeat" validate:"omitempty,oneof=daily weekly monthly"`
}

// Schedule registers a future run with the backend scheduler, passing the
// session's bearer token along.
func (h *WorkflowsHandler) Schedule(c echo.Context) error {
	var form scheduleForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		view := h.load(c, err.Error())
		return c.Render(http.StatusBadRequest, "workflows", view)
	}

	when, err := time.ParseInLocation(scheduleTimeLayout, form.ScheduleTime, time.Local)
	if err != nil {
		view := h.load(c, "schedule time must be a valid date and time")
		return c.Render(http.StatusBadRequest, "workflows", view)
	}

	_, err = h.automation.Schedule(c.Request().Context(), ports.ScheduleRequest{
		WorkflowID:   c.Param("id"),
		ScheduleTime: when,
		Repeat:       form.Repeat,
	}, middleware.SessionFrom(c))
	if err != nil {
		view := h.load(c, "")
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "workflows", view)
	}

	return c.Redirect(http.StatusSeeOther, "/workflows")
}

// load fetches the catalog and scheduled runs. A failed catalog fetch is the
// view-level error; a failed scheduled fetch degrades to an empty list since
// the rest of the screen is still useful.
func (h *WorkflowsHandler) load(c echo.Context, notice string) workflowsView {
	ctx := c.Request().Context()
	view := workflowsView{
		pageShell: shell(c, "Workflows", "workflows"),
		Notice:    notice,
	}

	workflows, err := h.automation.Catalog(ctx)
	if err != nil {
		view.Error = errBackendDown
		return view
	}
	view.Workflows = workflows

	scheduled, err := h.automation.Scheduled(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to load scheduled workflows")
	} else {
		view.Scheduled = scheduled
	}

	return view
}
