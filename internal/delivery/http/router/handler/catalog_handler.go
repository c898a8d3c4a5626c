// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"streesilk/internal/delivery/http/response"
	"streesilk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for public catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListProducts handles the catalog listing request. Filters, sort and
// pagination arrive as query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	options := &usecase.ListProductsOptions{
		ActiveOnly: c.QueryParam("all") != "true",
		Category:   c.QueryParam("category"),
		Query:      c.QueryParam("q"),
		OnSale:     c.QueryParam("sale") == "true",
		NewArrival: c.QueryParam("new") == "true",
		Sort:       c.QueryParam("sort"),
		Limit:      intQueryParam(c, "limit"),
		Page:       intQueryParam(c, "page"),
		PageSize:   intQueryParam(c, "pageSize"),
	}

	page, err := h.uc.ListProducts(c.Request().Context(), options)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetProduct handles a single-product fetch by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

func intQueryParam(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
