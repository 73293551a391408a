package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cbhud/trackrig/internal/core/domain"
)

type stubAuthService struct {
	registerErr error
	loginToken  string
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, email, _, fullName string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{
		ID:        "u1",
		Email:     email,
		FullName:  fullName,
		Role:      domain.RoleEmployee,
		CreatedAt: time.Now(),
	}, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return s.loginToken, s.loginErr
}

func serve(t *testing.T, h echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec := serve(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"new@x.com","password":"password1","full_name":"New User"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"role":"EMPLOYEE"`) {
		t.Fatalf("expected EMPLOYEE role in response: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_RegisterRejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"missing email", `{"password":"password1","full_name":"X"}`},
		{"bad email", `{"email":"nope","password":"password1","full_name":"X"}`},
		{"missing password", `{"email":"a@x.com","full_name":"X"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, h.Register, http.MethodPost, "/api/auth/register", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_RegisterAcceptsAnyPasswordLength(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// Any non-empty password registers; there is no length floor.
	rec := serve(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"p1","full_name":"A"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_LoginReturnsToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "signed-token"})

	rec := serve(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"password1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"signed-token"`) {
		t.Fatalf("unexpected login body: %s", rec.Body.String())
	}
}

func TestAuthHandler_MeWithoutPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	rec := serve(t, h.Me, http.MethodGet, "/api/me", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
