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

// ContactHandler holds dependencies for the contact-form handler.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{uc: uc, logger: logger}
}

// SubmitContact persists a support inquiry. The route sits behind the
// optional-auth middleware, so the identity may be nil.
func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var input usecase.SubmitContactInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	id, err := h.uc.SubmitContact(c.Request().Context(), middleware.IdentityFrom(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id}, "Message received")
}
