package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type CopyHandler struct {
	automation ports.AutomationService
}

func NewCopyHandler(automation ports.AutomationService) *CopyHandler {
	return &CopyHandler{automation: automation}
}

type copyTypeOption struct {
	ID          string
	Label       string
	Description string
}

var copyTypes = []copyTypeOption{
	{ID: domain.CopyTypeReengagement, Label: "Re-engagement", Description: "Win back lapsed clients"},
	{ID: domain.CopyTypeBirthday, Label: "Birthday", Description: "Birthday celebration emails"},
	{ID: domain.CopyTypePromotion, Label: "Promotion", Description: "Special offers & promotions"},
}

type copyView struct {
	pageShell
	Error    string
	Types    []copyTypeOption
	Selected string
	ClientID string
	Result   *domain.CopyResult
}

// Page renders the generator form.
func (h *CopyHandler) Page(c echo.Context) error {
	return c.Render(http.StatusOK, "copy", copyView{
		pageShell: shell(c, "AI Copy Generator", "copy"),
		Types:     copyTypes,
		Selected:  domain.CopyTypeReengagement,
	})
}

type generateCopyForm struct {
	CopyType string `form:"copy_type" validate:"required,oneof=reengagement birthday promotion"`
	ClientID string `form:"client_id"`
}

// Generate produces marketing copy for the selected type and renders the
// draft plus its variants inline.
func (h *CopyHandler) Generate(c echo.Context) error {
	var form generateCopyForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view := copyView{
		pageShell: shell(c, "AI Copy Generator", "copy"),
		Types:     copyTypes,
		Selected:  form.CopyType,
		ClientID:  form.ClientID,
	}

	if err := c.Validate(&form); err != nil {
		view.Error = err.Error()
		view.Selected = domain.CopyTypeReengagement
		return c.Render(http.StatusBadRequest, "copy", view)
	}

	result, err := h.automation.GenerateCopy(c.Request().Context(), form.CopyType, form.ClientID, actor(c))
	if err != nil {
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "copy", view)
	}

	view.Result = result
	return c.Render(http.StatusOK, "copy", view)
}
