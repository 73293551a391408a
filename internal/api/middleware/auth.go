package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/api/metrics"
	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
	"github.com/cbhud/trackrig/internal/core/token"
)

// principalKey is the echo context key the authenticated user is stored
// under. The principal lives for one request only.
const principalKey = "principal"

// Principal returns the authenticated user attached by Authenticate.
func Principal(c echo.Context) (*domain.User, bool) {
	u, ok := c.Get(principalKey).(*domain.User)
	return u, ok
}

// Authenticate validates the bearer token on every route the policy marks as
// protected and attaches the resolved user to the request context.
//
// The claimed subject is re-resolved against the user store on every
// request; a token whose user has since been deleted is rejected. Every
// failure class (missing header, malformed token, bad signature, expiry,
// unresolvable subject) collapses to the same 401 so the response cannot be
// used as an oracle for why a token failed.
func Authenticate(codec *token.Codec, users ports.UserRepository, policy *Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if policy.Skipper(c) {
				return next(c)
			}

			raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return unauthenticated()
			}

			claims, err := codec.Decode(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return unauthenticated()
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return unauthenticated()
				}
				return err
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthenticated() error {
	return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return "expired"
	case errors.Is(err, token.ErrBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
