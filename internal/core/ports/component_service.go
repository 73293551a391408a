package ports

import (
	"context"
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
)

// CreateComponentInput carries the fields a caller may set when registering
// a component. Status defaults to in_storage when empty.
type CreateComponentInput struct {
	SerialNumber   string
	Name           string
	Category       domain.ComponentCategory
	Status         domain.ComponentStatus
	WorkstationID  string
	PurchaseDate   *time.Time
	WarrantyExpiry *time.Time
	Notes          string
}

// UpdateComponentInput is a partial update: nil fields are left untouched.
type UpdateComponentInput struct {
	Name   *string
	Status *domain.ComponentStatus
	Notes  *string
}

type ComponentService interface {
	Create(ctx context.Context, in CreateComponentInput) (*domain.Component, error)
	Get(ctx context.Context, id string) (*domain.Component, error)
	List(ctx context.Context, filter domain.ComponentFilter) ([]domain.Component, error)
	Update(ctx context.Context, id string, in UpdateComponentInput) (*domain.Component, error)
	Assign(ctx context.Context, id, workstationID string) (*domain.Component, error)
	Unassign(ctx context.Context, id string) (*domain.Component, error)
	Delete(ctx context.Context, id string) error
}
