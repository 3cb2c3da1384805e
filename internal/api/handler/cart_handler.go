package handler

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/api/metrics"
	"github.com/shopfront/storefront-api/internal/core/ports"
)

const cartCookieName = "storefront_cart"

const cartCookieTTL = 30 * 24 * time.Hour

// CartHandler implements the addItemToCart boundary contract. Carts are
// anonymous, keyed by an opaque cookie that is minted on first use.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addCartItemRequest struct {
	ProductSlug string `json:"product_slug" validate:"required"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0"`
}

type cartResponse struct {
	CartID string           `json:"cart_id"`
	Items  []ports.CartItem `json:"items"`
}

// AddItem handles POST /cart/items.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cartID, err := h.cartID(c)
	if err != nil {
		return err
	}

	if err := h.carts.AddItem(c.Request().Context(), cartID, req.ProductSlug, req.Quantity); err != nil {
		return err
	}
	metrics.CartItemsAddedTotal.Inc()

	items, err := h.carts.Items(c.Request().Context(), cartID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{CartID: cartID, Items: items})
}

// Get handles GET /cart.
//
// @Summary      Get the current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	cartID, err := h.cartID(c)
	if err != nil {
		return err
	}

	items, err := h.carts.Items(c.Request().Context(), cartID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{CartID: cartID, Items: items})
}

// cartID returns the caller's cart cookie, minting one when absent.
func (h *CartHandler) cartID(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate cart id: %w", err)
	}
	id := hex.EncodeToString(b)

	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cartCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}
