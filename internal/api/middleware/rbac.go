package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/core/domain"
)

// RequireRole guards a route behind one or more roles. It must run after
// Authenticate: a missing principal is a 401, a principal with the wrong
// role a 403.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := Principal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
