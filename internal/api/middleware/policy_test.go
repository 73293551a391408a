package middleware

import (
	"net/http"
	"testing"
)

func TestPolicy_Evaluate(t *testing.T) {
	p := NewPolicy(
		Rule{Prefix: "/api/auth/", Access: Public},
		Rule{Prefix: "/health", Access: Public},
		Rule{Method: http.MethodGet, Prefix: "/metrics", Access: Public},
		Rule{Prefix: "/api/", Access: AuthenticatedOnly},
	)

	cases := []struct {
		method string
		path   string
		want   Access
	}{
		{http.MethodPost, "/api/auth/login", Public},
		{http.MethodPost, "/api/auth/register", Public},
		{http.MethodGet, "/health", Public},
		{http.MethodGet, "/health/ready", Public},
		{http.MethodGet, "/metrics", Public},
		{http.MethodPost, "/metrics", AuthenticatedOnly},
		{http.MethodGet, "/api/components", AuthenticatedOnly},
		{http.MethodDelete, "/api/workstations/42", AuthenticatedOnly},
		// Preflights are public everywhere, even on protected paths.
		{http.MethodOptions, "/api/components", Public},
		{http.MethodOptions, "/anything", Public},
		// Unmatched paths default to protected.
		{http.MethodGet, "/debug/pprof", AuthenticatedOnly},
	}

	for _, tc := range cases {
		if got := p.Evaluate(tc.method, tc.path); got != tc.want {
			t.Errorf("%s %s: want %v, got %v", tc.method, tc.path, tc.want, got)
		}
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	p := NewPolicy(
		Rule{Prefix: "/api/public/", Access: Public},
		Rule{Prefix: "/api/", Access: AuthenticatedOnly},
	)

	if got := p.Evaluate(http.MethodGet, "/api/public/info"); got != Public {
		t.Fatalf("expected first rule to win, got %v", got)
	}
	if got := p.Evaluate(http.MethodGet, "/api/private"); got != AuthenticatedOnly {
		t.Fatalf("expected fallthrough to second rule, got %v", got)
	}
}
