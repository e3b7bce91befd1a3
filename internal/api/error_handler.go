package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicos/console/internal/api/middleware"
	"github.com/clinicos/console/internal/core/domain"
)

// errorResponse is the canonical error envelope for non-HTML callers.
type errorResponse struct {
	Error string `json:"error"`
}

type errorView struct {
	Title   string
	Status  int
	Message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the HTML error page for browser navigation and a JSON envelope
//     otherwise.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		if middleware.WantsHTML(c.Request()) {
			if rerr := c.Render(code, "error", errorView{Title: "Error", Status: code, Message: msg}); rerr == nil {
				return
			}
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "client not found"
	case errors.Is(err, domain.ErrWorkflowNotFound):
		return http.StatusNotFound, "workflow not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	}

	// A failed backend call that escaped a per-view banner.
	var be *domain.BackendError
	if errors.As(err, &be) {
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend failure")
		return http.StatusBadGateway, "failed to connect to backend"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
