package ports

import (
	"context"

	"github.com/cbhud/trackrig/internal/core/domain"
)

// UserRepository is the credential store collaborator. Create must reject a
// duplicate email with domain.ErrEmailTaken; the store's unique index is the
// authoritative guard against concurrent registrations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
