package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/api/metrics"
	mw "github.com/shopfront/storefront-api/internal/api/middleware"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// AuthHandler owns session establishment and the identity check.
type AuthHandler struct {
	sessions     ports.SessionService
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(sessions ports.SessionService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(token, h.cookieTTL))
	return c.JSON(http.StatusOK, sessionResponse{User: user})
}

// Logout revokes the current session and clears the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Success      204  "session revoked"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(mw.SessionCookieName); err == nil {
		h.sessions.Logout(c.Request().Context(), cookie.Value)
	}
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.NoContent(http.StatusNoContent)
}

// Session reports the identity behind the presented cookie bundle. It always
// answers 200: an invalid or dangling session is an anonymous caller, not an
// error.
//
// @Summary      Identity check
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SessionAssertion
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(mw.SessionCookieName); err == nil {
		token = cookie.Value
	}

	assertion := h.sessions.Read(c.Request().Context(), token)
	if assertion.Authenticated {
		metrics.SessionReadsTotal.WithLabelValues("authenticated").Inc()
	} else {
		metrics.SessionReadsTotal.WithLabelValues("anonymous").Inc()
	}

	return c.JSON(http.StatusOK, assertion)
}

func (h *AuthHandler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
