package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/service"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Authentication failures reach this handler already collapsed to a single
// 401; the mapping below never re-introduces a distinction the middleware
// deliberately erased.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware 401/403).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, domain.ErrUnauthenticated.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, domain.ErrForbidden.Error()
	case errors.Is(err, service.ErrTooManyAttempts):
		return http.StatusTooManyRequests, service.ErrTooManyAttempts.Error()
	case errors.Is(err, domain.ErrComponentNotFound),
		errors.Is(err, domain.ErrWorkstationNotFound),
		errors.Is(err, domain.ErrMaintenanceLogNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicateSerial),
		errors.Is(err, domain.ErrDuplicateWorkstation):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrInvalidComponent),
		errors.Is(err, service.ErrInvalidWorkstation),
		errors.Is(err, service.ErrInvalidMaintenanceLog):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error (store failures included): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
