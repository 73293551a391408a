package ports

import (
	"context"

	"github.com/cbhud/trackrig/internal/core/domain"
)

// WorkstationRepository persists workstations. Create must reject a
// duplicate name with domain.ErrDuplicateWorkstation.
type WorkstationRepository interface {
	Create(ctx context.Context, w *domain.Workstation) (*domain.Workstation, error)
	FindByID(ctx context.Context, id string) (*domain.Workstation, error)
	List(ctx context.Context) ([]domain.Workstation, error)
	Update(ctx context.Context, w *domain.Workstation) error
	Delete(ctx context.Context, id string) error
}
