package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicos/console/internal/api/middleware"
	"github.com/clinicos/console/internal/core/domain"
	"github.com/clinicos/console/internal/core/ports"
)

type AuthHandler struct {
	auth       ports.AuthService
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL}
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type loginView struct {
	Title string
	Error string
	Email string
}

// ShowLogin renders the sign-in form. The route sits outside the auth gate
// so it is always reachable.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login", loginView{Title: "Sign in"})
}

// Login authenticates against the backend and establishes the session
// cookie. The failure message never distinguishes wrong-password from
// unknown-user.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginView{Title: "Sign in", Error: "Invalid email or password"})
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginView{Title: "Sign in", Error: err.Error(), Email: form.Email})
	}

	cookie, _, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		view := loginView{Title: "Sign in", Email: form.Email}
		status := http.StatusUnauthorized
		if errors.Is(err, domain.ErrInvalidCredentials) {
			view.Error = "Invalid email or password"
		} else {
			view.Error = "Connection failed. Is the server running?"
			status = http.StatusBadGateway
		}
		return c.Render(status, "login", view)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    cookie,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout destroys the session and clears the cookie. Both halves of the
// stored pair go together; afterwards the gate sends every protected route
// back to /login.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}
