package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "storefront/internal/errors"
	"storefront/internal/session"
)

// authorizeRequest resolves the request's session and runs the guard. Every
// mutating handler goes through here so the check-and-renew sequence cannot
// drift between resources.
func authorizeRequest(c echo.Context, guard *session.Guard, sessions session.Accessor) error {
	sess, err := sessions(c)
	if err != nil {
		return apperrors.ErrInternal
	}
	if _, err := guard.Authorize(sess); err != nil {
		return err
	}
	return nil
}

// respondError renders the canonical error envelope for a taxonomy error.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrBadRequest
	}
	return id, nil
}

// deleteResponse reports how many rows a delete removed.
type deleteResponse struct {
	Deleted int64 `json:"deleted"`
}
