package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "storefront/internal/errors"
	"storefront/internal/service"
	"storefront/internal/session"
)

// ResourceHandler serves the uniform CRUD endpoints for one resource type.
// Reads are public; mutations require an authorized session, checked and
// renewed before any transaction is opened.
type ResourceHandler[T any] struct {
	svc      service.ResourceService[T]
	guard    *session.Guard
	sessions session.Accessor
	bind     func(echo.Context) (*T, error)
}

// NewResourceHandler wires the handler for one resource. bind decodes and
// validates the request body into the entity shape.
func NewResourceHandler[T any](
	svc service.ResourceService[T],
	guard *session.Guard,
	sessions session.Accessor,
	bind func(echo.Context) (*T, error),
) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc, guard: guard, sessions: sessions, bind: bind}
}

// FindAll lists every row, ordered by the store.
func (h *ResourceHandler[T]) FindAll(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// FindByID returns one row or 404.
func (h *ResourceHandler[T]) FindByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Create inserts one row. Session required.
func (h *ResourceHandler[T]) Create(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err)
	}
	input, err := h.bind(c)
	if err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	created, err := h.svc.Create(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// Update replaces the business fields of one row. Session required.
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	if err := h.authorize(c); err != nil {
		return respondError(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}
	input, err := h.bind(c)
	if err != nil {
		return respondError(c, apperrors.ErrBadRequest)
	}
	updated, err := h.svc.Update(c.Request().Context(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes one row and reports the affected count. Session required.
func (h *ResourceHandler[T]) Delete(c echo.Context) error {
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

func (h *ResourceHandler[T]) authorize(c echo.Context) error {
	return authorizeRequest(c, h.guard, h.sessions)
}
