package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Access is the authentication requirement of a route.
type Access int

const (
	// Public routes are served without any authentication work.
	Public Access = iota
	// AuthenticatedOnly routes require a valid bearer token.
	AuthenticatedOnly
)

// Rule maps a method and path prefix to an access level. An empty Method
// matches every method.
type Rule struct {
	Method string
	Prefix string
	Access Access
}

// Policy is the route-level access table. Rules are evaluated in order and
// the first match wins; unmatched paths require authentication. CORS
// preflight requests are always public regardless of the rules.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Evaluate returns the access level for a request.
func (p *Policy) Evaluate(method, path string) Access {
	if method == http.MethodOptions {
		return Public
	}
	for _, r := range p.rules {
		if r.Method != "" && r.Method != method {
			continue
		}
		if strings.HasPrefix(path, r.Prefix) {
			return r.Access
		}
	}
	return AuthenticatedOnly
}

// Skipper adapts the policy to echo's middleware-skipper convention, so the
// Authenticate middleware never runs for public routes.
func (p *Policy) Skipper(c echo.Context) bool {
	return p.Evaluate(c.Request().Method, c.Request().URL.Path) == Public
}
