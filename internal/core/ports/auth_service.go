package ports

import (
	"context"

	"github.com/cbhud/trackrig/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
