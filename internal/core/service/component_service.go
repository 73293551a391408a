package service

import (
	"context"
	"errors"
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

var ErrInvalidComponent = errors.New("invalid component")

// ComponentService implements inventory operations on components.
type ComponentService struct {
	repo         ports.ComponentRepository
	workstations ports.WorkstationRepository
}

func NewComponentService(repo ports.ComponentRepository, workstations ports.WorkstationRepository) *ComponentService {
	return &ComponentService{repo: repo, workstations: workstations}
}

func (s *ComponentService) Create(ctx context.Context, in ports.CreateComponentInput) (*domain.Component, error) {
	if in.SerialNumber == "" || in.Name == "" || !in.Category.Valid() {
		return nil, ErrInvalidComponent
	}

	status := in.Status
	if status == "" {
		status = domain.ComponentInStorage
	}
	if !status.Valid() {
		return nil, ErrInvalidComponent
	}

	// A component assigned at creation must point at a real workstation.
	if in.WorkstationID != "" {
		if _, err := s.workstations.FindByID(ctx, in.WorkstationID); err != nil {
			return nil, err
		}
	}

	c := &domain.Component{
		SerialNumber:   in.SerialNumber,
		Name:           in.Name,
		Category:       in.Category,
		Status:         status,
		WorkstationID:  in.WorkstationID,
		PurchaseDate:   in.PurchaseDate,
		WarrantyExpiry: in.WarrantyExpiry,
		Notes:          in.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	return s.repo.Create(ctx, c)
}

func (s *ComponentService) Get(ctx context.Context, id string) (*domain.Component, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ComponentService) List(ctx context.Context, filter domain.ComponentFilter) ([]domain.Component, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, ErrInvalidComponent
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidComponent
	}
	return s.repo.List(ctx, filter)
}

func (s *ComponentService) Update(ctx context.Context, id string, in ports.UpdateComponentInput) (*domain.Component, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, ErrInvalidComponent
		}
		c.Name = *in.Name
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidComponent
		}
		c.Status = *in.Status
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign places a component onto a workstation and marks it in use.
func (s *ComponentService) Assign(ctx context.Context, id, workstationID string) (*domain.Component, error) {
	if _, err := s.workstations.FindByID(ctx, workstationID); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.WorkstationID = workstationID
	c.Status = domain.ComponentInUse

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Unassign returns a component to storage.
func (s *ComponentService) Unassign(ctx context.Context, id string) (*domain.Component, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.WorkstationID = ""
	c.Status = domain.ComponentInStorage

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ComponentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
