package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "storefront/internal/errors"
	"storefront/internal/service"
	"storefront/internal/session"
)

// UserHandler serves user CRUD. Same guard asymmetry as the other resources:
// reads are public, mutations need a session.
type UserHandler struct {
	svc      service.UserService
	guard    *session.Guard
	sessions session.Accessor
}

// NewUserHandler creates a handler layer for users.
func NewUserHandler(svc service.UserService, guard *session.Guard, sessions session.Accessor) *UserHandler {
	return &UserHandler{svc: svc, guard: guard, sessions: sessions}
}

// UserRequest is the payload for creating or replacing a user. Update
// consumes only the profile fields; username and password are set once.
type UserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

func (r *UserRequest) toInput() service.UserInput {
	return service.UserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// FindAll godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /api/v1/users [get]
func (h *UserHandler) FindAll(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// FindByID godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) FindByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Create godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User payload"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err)
	}
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	created, err := h.svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// Update godoc
// @Summary Update user profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UserRequest true "User payload"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	updated, err := h.svc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} deleteResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	count, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: count})
}

func (h *UserHandler) authorize(c echo.Context) error {
	return authorizeRequest(c, h.guard, h.sessions)
}
