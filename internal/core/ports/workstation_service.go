package ports

import (
	"context"

	"github.com/cbhud/trackrig/internal/core/domain"
)

type CreateWorkstationInput struct {
	Name   string
	Status domain.WorkstationStatus
	GridX  int
	GridY  int
}

// UpdateWorkstationInput is a partial update: nil fields are left untouched.
type UpdateWorkstationInput struct {
	Name   *string
	Status *domain.WorkstationStatus
	GridX  *int
	GridY  *int
}

type WorkstationService interface {
	Create(ctx context.Context, in CreateWorkstationInput) (*domain.Workstation, error)
	Get(ctx context.Context, id string) (*domain.Workstation, error)
	List(ctx context.Context) ([]domain.Workstation, error)
	Update(ctx context.Context, id string, in UpdateWorkstationInput) (*domain.Workstation, error)
	Delete(ctx context.Context, id string) error
}
