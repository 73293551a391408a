package domain

import (
	"errors"
	"time"
)

// WorkstationStatus is the operational state of a workstation.
type WorkstationStatus string

const (
	WorkstationActive      WorkstationStatus = "active"
	WorkstationInactive    WorkstationStatus = "inactive"
	WorkstationMaintenance WorkstationStatus = "maintenance"
)

var ErrWorkstationNotFound = errors.New("workstation not found")
var ErrDuplicateWorkstation = errors.New("workstation name already in use")

// Valid reports whether the status is one of the known lookup values.
func (s WorkstationStatus) Valid() bool {
	switch s {
	case WorkstationActive, WorkstationInactive, WorkstationMaintenance:
		return true
	}
	return false
}

// Workstation is a physical rig on the floor grid.
type Workstation struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	Name      string            `json:"name" bson:"name"`
	Status    WorkstationStatus `json:"status" bson:"status"`
	GridX     int               `json:"grid_x" bson:"grid_x"`
	GridY     int               `json:"grid_y" bson:"grid_y"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
