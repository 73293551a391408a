package service

import (
	"context"
	"errors"
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

var ErrInvalidWorkstation = errors.New("invalid workstation")

// WorkstationService implements operations on workstations.
type WorkstationService struct {
	repo ports.WorkstationRepository
}

func NewWorkstationService(repo ports.WorkstationRepository) *WorkstationService {
	return &WorkstationService{repo: repo}
}

func (s *WorkstationService) Create(ctx context.Context, in ports.CreateWorkstationInput) (*domain.Workstation, error) {
	if in.Name == "" {
		return nil, ErrInvalidWorkstation
	}

	status := in.Status
	if status == "" {
		status = domain.WorkstationActive
	}
	if !status.Valid() {
		return nil, ErrInvalidWorkstation
	}

	w := &domain.Workstation{
		Name:      in.Name,
		Status:    status,
		GridX:     in.GridX,
		GridY:     in.GridY,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.Create(ctx, w)
}

func (s *WorkstationService) Get(ctx context.Context, id string) (*domain.Workstation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *WorkstationService) List(ctx context.Context) ([]domain.Workstation, error) {
	return s.repo.List(ctx)
}

func (s *WorkstationService) Update(ctx context.Context, id string, in ports.UpdateWorkstationInput) (*domain.Workstation, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrInvalidWorkstation
		}
		w.Name = *in.Name
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidWorkstation
		}
		w.Status = *in.Status
	}
	if in.GridX != nil {
		w.GridX = *in.GridX
	}
	if in.GridY != nil {
		w.GridY = *in.GridY
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkstationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
