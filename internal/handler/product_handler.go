package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/session"
)

// ProductRequest is the payload for creating or replacing a product.
type ProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// NewProductHandler wires the CRUD endpoints for products.
func NewProductHandler(
	svc service.ResourceService[model.Product],
	guard *session.Guard,
	sessions session.Accessor,
) *ResourceHandler[model.Product] {
	return NewResourceHandler(svc, guard, sessions, bindProduct)
}

func bindProduct(c echo.Context) (*model.Product, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &model.Product{Name: req.Name, Price: req.Price}, nil
}
