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

// UserHandler holds dependencies for profile handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// SyncUser creates or refreshes the caller's synced profile.
func (h *UserHandler) SyncUser(c echo.Context) error {
	user, err := h.uc.SyncUser(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile synchronized")
}

// GetMe returns the caller's synced profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	identity := middleware.IdentityFrom(c)

	user, err := h.uc.GetUser(c.Request().Context(), identity.SubjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
