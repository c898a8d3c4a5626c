package handler

import (
	"io"
	"log/slog"
	"net/http"

	"streesilk/internal/delivery/http/middleware"
	"streesilk/internal/delivery/http/response"
	"streesilk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin console handlers. Admin
// authorization is decided in the usecases, so a non-admin caller reaches
// them and gets Unauthorized back.
type AdminHandler struct {
	adminUC  usecase.AdminUsecase
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase, uploadUC usecase.UploadUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{adminUC: adminUC, uploadUC: uploadUC, logger: logger}
}

// CreateProduct creates a catalog entry.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), middleware.IdentityFrom(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct merges submitted fields into an existing product.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), middleware.IdentityFrom(c), c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes a product from the catalog.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	err := h.adminUC.DeleteProduct(c.Request().Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}

// ListContactMessages returns submitted contact messages for the console.
func (h *AdminHandler) ListContactMessages(c echo.Context) error {
	messages, err := h.adminUC.ListContactMessages(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// UploadImage stores a product image from a multipart form and returns its
// public URL.
func (h *AdminHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "A 'file' form field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.WithStack(err)
	}

	url, err := h.uploadUC.UploadProductImage(c.Request().Context(), middleware.IdentityFrom(c), fileHeader.Filename, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
