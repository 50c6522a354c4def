package handler

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/session"
)

// OrderRequest is the payload for creating or replacing an order.
type OrderRequest struct {
	Name string `json:"name" validate:"required"`
}

// NewOrderHandler wires the CRUD endpoints for orders.
func NewOrderHandler(
	svc service.ResourceService[model.Order],
	guard *session.Guard,
	sessions session.Accessor,
) *ResourceHandler[model.Order] {
	return NewResourceHandler(svc, guard, sessions, bindOrder)
}

func bindOrder(c echo.Context) (*model.Order, error) {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &model.Order{Name: req.Name}, nil
}
