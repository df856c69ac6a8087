package http

import (
	"errors"
	"net/http"

	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeDomainError translates the core's error taxonomy into an HTTP response:
// validation problems map to 400, authorization to 403, missing objects to
// 404, and inventory/state conflicts to 409. Anything unrecognized is a 500
// with a generic message so internals never leak to clients.
func writeDomainError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationFailedError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:     http.StatusBadRequest,
			Message:  "Validation failed",
			Messages: &validationErr.Messages,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrInsufficientInventory),
		errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
