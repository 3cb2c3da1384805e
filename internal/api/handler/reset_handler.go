package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/api/metrics"
	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

// resetSentMessage is the single reply for every structurally valid reset
// request. The wording commits to nothing about whether an account matched.
const resetSentMessage = "If the account exists, a reset link has been sent."

// ResetHandler is the boundary adapter for the password recovery flow. It is
// responsible for the anti-enumeration guarantee: whatever the issuer learned
// internally, the response shape and status are identical for matched and
// unmatched identifiers.
type ResetHandler struct {
	resets     ports.PasswordResetService
	production bool
}

func NewResetHandler(resets ports.PasswordResetService, production bool) *ResetHandler {
	return &ResetHandler{resets: resets, production: production}
}

// Request handles POST /auth/password-reset/request.
//
// @Summary      Request a password reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequestRequest  true  "Account identifier (username or email)"
// @Success      200   {object}  resetResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/password-reset/request [post]
func (h *ResetHandler) Request(c echo.Context) error {
	var req resetRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	metrics.ResetRequestsTotal.Inc()

	result, err := h.resets.Request(c.Request().Context(), req.Identifier)
	if err != nil {
		return err
	}

	resp := resetResponse{OK: true, Message: resetSentMessage}
	if !h.production && result.Found {
		// Local-verification convenience only; the production build never
		// carries the raw token in a response.
		resp.DebugToken = result.Token.Token
	}
	return c.JSON(http.StatusOK, resp)
}

// Redeem handles POST /auth/password-reset/redeem.
//
// @Summary      Redeem a password reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRedeemRequest  true  "Identifier, token and new password"
// @Success      200   {object}  resetResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  resetResponse
// @Router       /auth/password-reset/redeem [post]
func (h *ResetHandler) Redeem(c echo.Context) error {
	var req resetRedeemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.resets.Redeem(c.Request().Context(), req.Identifier, req.Token, req.NewPassword)
	if err != nil {
		metrics.ResetRedemptionsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrResetInvalid) {
			return c.JSON(http.StatusUnprocessableEntity, resetResponse{OK: false, Message: domain.ErrResetInvalid.Error()})
		}
		return err
	}

	metrics.ResetRedemptionsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, resetResponse{OK: true})
}
