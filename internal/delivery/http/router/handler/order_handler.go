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

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// SubmitOrder turns the submitted cart snapshot into a durable order.
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	var input usecase.SubmitOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.SubmitOrder(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order submitted")
}

// GetOrder fetches one order; callers may only read their own.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	order, err := h.uc.GetOrder(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// OrderQR streams a PNG QR code linking to the order's tracking page.
func (h *OrderHandler) OrderQR(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	png, err := h.uc.OrderQR(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
