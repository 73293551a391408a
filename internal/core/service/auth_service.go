package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
	"github.com/cbhud/trackrig/internal/core/token"
)

var ErrTooManyAttempts = errors.New("too many login attempts")

// AuthService implements registration and login. Login is read-only: it
// never mutates stored state.
type AuthService struct {
	repo    ports.UserRepository
	codec   *token.Codec
	limiter ports.LoginLimiter // optional
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{repo: repo, codec: codec, limiter: limiter}
}

// Register creates a new identity with the lowest-privilege role. The
// ExistsByEmail pre-check gives a clean conflict on the common path; the
// store's unique index on email is the backstop against a concurrent insert
// between check and save, and also surfaces as domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login verifies credentials and issues a signed token. An unknown email and
// a wrong password are deliberately indistinguishable: both return
// domain.ErrInvalidCredentials so the endpoint cannot be used to probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if ok, err := s.limiter.Allow(ctx, email); err == nil && !ok {
			return "", ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.codec.Issue(user.Email, user.Role)
}
