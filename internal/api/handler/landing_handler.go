package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type LandingHandler struct{}

func NewLandingHandler() *LandingHandler {
	return &LandingHandler{}
}

type landingView struct {
	Title string
}

// Page renders the public marketing page.
func (h *LandingHandler) Page(c echo.Context) error {
	return c.Render(http.StatusOK, "landing", landingView{Title: "ClinicOS"})
}
