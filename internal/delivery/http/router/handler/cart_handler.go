package handler

import (
	"log/slog"
	"net/http"

	"streesilk/internal/delivery/http/middleware"
	"streesilk/internal/delivery/http/response"
	"streesilk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers. All routes sit behind
// the auth middleware, so an identity is always present.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart returns the caller's durable cart with derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	view, err := h.uc.GetCart(c.Request().Context(), identity.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem merges a product snapshot into the caller's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var input usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.AddItem(c.Request().Context(), identity.SubjectID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Item added to cart")
}

// UpdateQuantity overwrites a line's quantity; zero or less removes it.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	err := h.uc.UpdateQuantity(c.Request().Context(), identity.SubjectID, c.Param("id"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart updated")
}

// RemoveItem removes one line from the caller's cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	if err := h.uc.RemoveItem(c.Request().Context(), identity.SubjectID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed")
}

// ClearCart removes every line from the caller's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	if err := h.uc.ClearCart(c.Request().Context(), identity.SubjectID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// MergeLocalCart drains a client-held anonymous cart into the caller's
// durable cart and returns the merged result.
func (h *CartHandler) MergeLocalCart(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var input struct {
		Items []usecase.LocalCartLine `json:"items" validate:"dive"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid local cart input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	view, err := h.uc.MergeLocalCart(c.Request().Context(), identity.SubjectID, input.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart synchronized")
}
