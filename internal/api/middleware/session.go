package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session claim.
const SessionCookieName = "storefront_session"

// Session resolves the login cookie into a session assertion and injects the
// identity into the request context. Requests without a valid session are
// rejected with 401; the response is the same whether the cookie was absent,
// forged, revoked, or pointed at a deleted account.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			assertion := sessions.Read(c.Request().Context(), cookieValue(c, SessionCookieName))
			if !assertion.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set("role", assertion.Role)
			c.Set("username", assertion.User.Username)
			c.Set("user", assertion.User)

			return next(c)
		}
	}
}

// Gate enforces an access predicate against the role injected by Session.
// The predicate itself never redirects or writes a response; denial is the
// gate middleware's job.
func Gate(allowed func(domain.Role) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if !allowed(role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
