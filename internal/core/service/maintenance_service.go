package service

import (
	"context"
	"errors"
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

var ErrInvalidMaintenanceLog = errors.New("invalid maintenance log")

// MaintenanceService records and lists service work on workstations.
type MaintenanceService struct {
	repo         ports.MaintenanceRepository
	workstations ports.WorkstationRepository
}

func NewMaintenanceService(repo ports.MaintenanceRepository, workstations ports.WorkstationRepository) *MaintenanceService {
	return &MaintenanceService{repo: repo, workstations: workstations}
}

func (s *MaintenanceService) Record(ctx context.Context, in ports.RecordMaintenanceInput) (*domain.MaintenanceLog, error) {
	if in.WorkstationID == "" || in.Type.Name == "" || in.PerformedBy == "" {
		return nil, ErrInvalidMaintenanceLog
	}
	if !in.Type.Active {
		return nil, ErrInvalidMaintenanceLog
	}

	if _, err := s.workstations.FindByID(ctx, in.WorkstationID); err != nil {
		return nil, err
	}

	performedAt := in.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}

	log := &domain.MaintenanceLog{
		WorkstationID: in.WorkstationID,
		Type:          in.Type,
		PerformedBy:   in.PerformedBy,
		Notes:         in.Notes,
		PerformedAt:   performedAt,
	}

	return s.repo.Create(ctx, log)
}

func (s *MaintenanceService) ListByWorkstation(ctx context.Context, workstationID string) ([]domain.MaintenanceLog, error) {
	if _, err := s.workstations.FindByID(ctx, workstationID); err != nil {
		return nil, err
	}
	return s.repo.ListByWorkstation(ctx, workstationID)
}

func (s *MaintenanceService) List(ctx context.Context) ([]domain.MaintenanceLog, error) {
	return s.repo.List(ctx)
}
