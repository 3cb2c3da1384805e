package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/core/domain"
)

// AdminHandler serves the protected admin surface. Access control happens in
// the Session and Gate middleware; these handlers only render for callers the
// guards already admitted.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type dashboardResponse struct {
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type settingsResponse struct {
	StoreName string      `json:"store_name"`
	Currency  string      `json:"currency"`
	Owner     string      `json:"owner"`
	Role      domain.Role `json:"role"`
}

// Dashboard handles GET /admin/dashboard.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	user, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Username: user.Username, Role: role})
}

// Settings handles GET /admin/settings.
//
// @Summary      Store settings
// @Tags         admin
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/settings [get]
func (h *AdminHandler) Settings(c echo.Context) error {
	user, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settingsResponse{
		StoreName: "Shopfront",
		Currency:  "USD",
		Owner:     user.Username,
		Role:      role,
	})
}
