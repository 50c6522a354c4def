package handler

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/session"
)

// ImageRequest is the payload for creating or replacing an image record.
type ImageRequest struct {
	Name      string `json:"name" validate:"required"`
	Path      string `json:"path" validate:"required"`
	ProductID int64  `json:"product_id" validate:"required"`
}

// NewImageHandler wires the CRUD endpoints for images.
func NewImageHandler(
	svc service.ResourceService[model.Image],
	guard *session.Guard,
	sessions session.Accessor,
) *ResourceHandler[model.Image] {
	return NewResourceHandler(svc, guard, sessions, bindImage)
}

func bindImage(c echo.Context) (*model.Image, error) {
	var req ImageRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &model.Image{Name: req.Name, Path: req.Path, ProductID: req.ProductID}, nil
}
