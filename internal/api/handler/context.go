package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/api/middleware"
	"github.com/clinicos/console/internal/core/domain"
)

// errBackendDown is the uniform per-view failure banner. Every view shows it
// for any failed backend call — transport and non-2xx alike.
const errBackendDown = "Failed to connect to backend"

// pageShell carries the fields every authenticated page layout needs.
type pageShell struct {
	Title  string
	Active string
	User   domain.User
}

// shell builds the layout model from the gated session. On unguarded routes
// the user block is simply empty.
func shell(c echo.Context, title, active string) pageShell {
	ps := pageShell{Title: title, Active: active}
	if s := middleware.SessionFrom(c); s != nil {
		ps.User = s.User
	}
	return ps
}

// actor returns the signed-in user's email for the console trail.
func actor(c echo.Context) string {
	if s := middleware.SessionFrom(c); s != nil {
		return s.User.Email
	}
	return ""
}
