package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

// SessionCookieName is the browser cookie holding the signed session handle.
const SessionCookieName = "clinicos_session"

const sessionContextKey = "session"

// RequireSession is the auth gate for protected routes. It resolves the
// session cookie before any page content is produced: a valid session is
// stashed in the request context and the page renders; anything else — no
// cookie, bad signature, unknown or malformed stored session — redirects
// HTML navigation to /login and rejects API-style requests with 401. The
// login route itself is registered outside the gate, so there is no
// redirect loop.
func RequireSession(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				session, err := auth.Current(c.Request().Context(), cookie.Value)
				if err == nil && session.Valid() {
					c.Set(sessionContextKey, session)
					return next(c)
				}
			}

			if WantsHTML(c.Request()) {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
	}
}

// SessionFrom returns the session stashed by RequireSession, or nil on
// unguarded routes.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionContextKey).(*domain.Session)
	return session
}

// WantsHTML decides content negotiation for gate rejections and error
// responses: browser navigation (Accept mentions text/html, or no Accept at
// all) gets HTML pages and redirects; everything else gets JSON. The method
// is deliberately not consulted — a browser form POST still navigates.
func WantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html") ||
		r.Header.Get("Accept") == ""
}
