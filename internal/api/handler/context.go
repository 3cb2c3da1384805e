package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call: a populated user proves the middleware
// ran and the session resolved to a real account.
func ctxIdentity(c echo.Context) (*domain.User, domain.Role, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	role, _ := c.Get("role").(domain.Role)
	return user, role, nil
}
