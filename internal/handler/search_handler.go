package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "storefront/internal/errors"
	"storefront/internal/service"
)

// SearchHandler serves the licence-holder search endpoint.
type SearchHandler struct {
	svc service.SearchService
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Full-text search over licence holders
// @Tags search
// @Produce json
// @Param query path string true "Search query"
// @Success 200 {array} search.Licenceholder
// @Failure 400 {object} errors.ErrorResponse
// @Router /search/{query} [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.Param("query")
	if query == "" {
		return respondError(c, apperrors.ErrBadRequest)
	}
	results, err := h.svc.Search(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, results)
}
