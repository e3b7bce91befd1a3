package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

const activityLimit = 50

type ActivityHandler struct {
	activity ports.ActivityService
	log      zerolog.Logger
}

func NewActivityHandler(activity ports.ActivityService, log zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{activity: activity, log: log}
}

type activityView struct {
	pageShell
	Error string
	Feed  []domain.ActivityItem
	Trail []domain.AuditEntry
}

// Page renders the backend activity feed alongside the console's own action
// trail. The feed failing is the view error; a broken trail degrades to an
// empty section.
func (h *ActivityHandler) Page(c echo.Context) error {
	ctx := c.Request().Context()
	view := activityView{pageShell: shell(c, "Activity", "activity")}

	feed, err := h.activity.Feed(ctx, activityLimit)
	if err != nil {
		view.Error = errBackendDown
	} else {
		view.Feed = feed
	}

	trail, err := h.activity.ConsoleTrail(ctx, activityLimit)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to load console trail")
	} else {
		view.Trail = trail
	}

	return c.Render(http.StatusOK, "activity", view)
}
