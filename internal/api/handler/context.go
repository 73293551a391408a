package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/api/middleware"
	"github.com/cbhud/trackrig/internal/core/domain"
)

// principal returns the authenticated user attached by the Authenticate
// middleware. Its presence proves the middleware ran; a protected handler
// reached without one is a wiring bug and is rejected with 401 rather than
// served anonymously.
func principal(c echo.Context) (*domain.User, error) {
	user, ok := middleware.Principal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}
	return user, nil
}
