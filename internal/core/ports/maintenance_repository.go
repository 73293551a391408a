package ports

import (
	"context"

	"github.com/cbhud/trackrig/internal/core/domain"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error)
	ListByWorkstation(ctx context.Context, workstationID string) ([]domain.MaintenanceLog, error)
	List(ctx context.Context) ([]domain.MaintenanceLog, error)
}
