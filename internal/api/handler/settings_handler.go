package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type SettingsHandler struct {
	backend ports.Backend
}

func NewSettingsHandler(backend ports.Backend) *SettingsHandler {
	return &SettingsHandler{backend: backend}
}

type settingsView struct {
	pageShell
	Error string
	Info  domain.SystemInfo
}

// Page renders integration status and the signed-in account.
func (h *SettingsHandler) Page(c echo.Context) error {
	view := settingsView{pageShell: shell(c, "Settings", "settings")}

	info, err := h.backend.Info(c.Request().Context())
	if err != nil {
		view.Error = errBackendDown
		return c.Render(http.StatusOK, "settings", view)
	}

	view.Info = *info
	return c.Render(http.StatusOK, "settings", view)
}
