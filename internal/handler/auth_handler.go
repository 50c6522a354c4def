package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
	"storefront/internal/session"
)

// AuthHandler handles login.
type AuthHandler struct {
	authService auth.Service
	guard       *session.Guard
	sessions    session.Accessor
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService auth.Service, guard *session.Guard, sessions session.Accessor) *AuthHandler {
	return &AuthHandler{authService: authService, guard: guard, sessions: sessions}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}

	user, err := h.authService.Authenticate(c.Request().Context(), auth.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return respondError(c, err)
	}

	sess, err := h.sessions(c)
	if err != nil {
		return respondError(c, apperrors.ErrInternal)
	}
	if err := h.guard.Login(sess, user.ID); err != nil {
		return respondError(c, err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, user)
}
