package handler

import (
	"time"

	"github.com/cbhud/trackrig/internal/core/domain"
	"github.com/cbhud/trackrig/internal/core/ports"
)

type createComponentRequest struct {
	SerialNumber   string `json:"serial_number" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"required,oneof=cpu gpu ram storage motherboard psu peripheral"`
	Status         string `json:"status" validate:"omitempty,oneof=in_use in_storage faulty retired"`
	WorkstationID  string `json:"workstation_id"`
	PurchaseDate   string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Notes          string `json:"notes"`
}

type updateComponentRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" validate:"omitempty,oneof=in_use in_storage faulty retired"`
	Notes  *string `json:"notes"`
}

type assignComponentRequest struct {
	WorkstationID string `json:"workstation_id" validate:"required"`
}

func (r createComponentRequest) toInput() (ports.CreateComponentInput, error) {
	in := ports.CreateComponentInput{
		SerialNumber:  r.SerialNumber,
		Name:          r.Name,
		Category:      domain.ComponentCategory(r.Category),
		Status:        domain.ComponentStatus(r.Status),
		WorkstationID: r.WorkstationID,
		Notes:         r.Notes,
	}
	if r.PurchaseDate != "" {
		t, err := time.Parse("2006-01-02", r.PurchaseDate)
		if err != nil {
			return in, err
		}
		in.PurchaseDate = &t
	}
	if r.WarrantyExpiry != "" {
		t, err := time.Parse("2006-01-02", r.WarrantyExpiry)
		if err != nil {
			return in, err
		}
		in.WarrantyExpiry = &t
	}
	return in, nil
}

func (r updateComponentRequest) toInput() ports.UpdateComponentInput {
	in := ports.UpdateComponentInput{
		Name:  r.Name,
		Notes: r.Notes,
	}
	if r.Status != nil {
		s := domain.ComponentStatus(*r.Status)
		in.Status = &s
	}
	return in
}
