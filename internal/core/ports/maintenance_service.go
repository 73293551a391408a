package ports

import (
	"context"
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
)

// RecordMaintenanceInput captures one piece of service work. PerformedAt
// defaults to now when zero; PerformedBy is taken from the authenticated
// principal, never from the request body.
type RecordMaintenanceInput struct {
	WorkstationID string
	Type          domain.MaintenanceType
	PerformedBy   string
	Notes         string
	PerformedAt   time.Time
}

type MaintenanceService interface {
	Record(ctx context.Context, in RecordMaintenanceInput) (*domain.MaintenanceLog, error)
	ListByWorkstation(ctx context.Context, workstationID string) ([]domain.MaintenanceLog, error)
	List(ctx context.Context) ([]domain.MaintenanceLog, error)
}
