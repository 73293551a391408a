package ports

import (
	"context"

	"github.com/cbhud/trackrig/internal/core/domain"
)

// ComponentRepository persists hardware components. Create must reject a
// duplicate serial number with domain.ErrDuplicateSerial.
type ComponentRepository interface {
	Create(ctx context.Context, c *domain.Component) (*domain.Component, error)
	FindByID(ctx context.Context, id string) (*domain.Component, error)
	List(ctx context.Context, filter domain.ComponentFilter) ([]domain.Component, error)
	Update(ctx context.Context, c *domain.Component) error
	Delete(ctx context.Context, id string) error
}
