package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopfront/storefront-api/internal/core/domain"
	"github.com/shopfront/storefront-api/internal/core/ports"
	"github.com/shopfront/storefront-api/internal/core/service"
)

// CatalogHandler serves the public read surface of the record store.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListPages handles GET /pages.
//
// @Summary      List content pages
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Page
// @Router       /pages [get]
func (h *CatalogHandler) ListPages(c echo.Context) error {
	pages, err := h.catalog.ListPages(c.Request().Context(), h.staffCaller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

// GetPage handles GET /pages/:slug.
//
// @Summary      Get a content page by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Page slug"
// @Success      200   {object}  domain.Page
// @Failure      404   {object}  errorResponse
// @Router       /pages/{slug} [get]
func (h *CatalogHandler) GetPage(c echo.Context) error {
	page, err := h.catalog.GetPage(c.Request().Context(), c.Param("slug"), h.staffCaller(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /products/:slug.
//
// @Summary      Get a product by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /products/{slug} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// staffCaller applies the catalog gate to whatever role the session
// middleware injected. Anonymous requests carry no role and resolve to a
// plain customer view.
func (h *CatalogHandler) staffCaller(c echo.Context) bool {
	role, _ := c.Get("role").(domain.Role)
	return service.CanManageCatalog(role)
}
