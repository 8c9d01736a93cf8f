package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/convoforge/backend/internal/apperr"
	"github.com/labstack/echo/v4"
)

// actorID returns the authenticated user id placed in the context by the
// JWT middleware.
func actorID(c echo.Context) uint {
	return c.Get("userID").(uint)
}

// parseUintParam parses a numeric path parameter
func parseUintParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// domainError translates the domain error taxonomy to HTTP status codes:
// not-found 404, business-rule violations 400, validation 422, anything
// else 500.
func domainError(err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrInvalidOperation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrValidation):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// bindAndValidate binds the request body and runs struct validation,
// rejecting malformed payloads before any store access.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
