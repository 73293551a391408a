package domain

import (
	"errors"
	"time"
)

var ErrMaintenanceLogNotFound = errors.New("maintenance log not found")

// MaintenanceType describes a recurring kind of service work, e.g. dust
// cleaning every 90 days. Inactive types are kept for history but cannot be
// used on new logs.
type MaintenanceType struct {
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`
	IntervalDays int    `json:"interval_days" bson:"interval_days"`
	Active       bool   `json:"active" bson:"active"`
}

// MaintenanceLog records one piece of service work performed on a
// workstation. PerformedBy is the id of the user who did the work.
type MaintenanceLog struct {
	ID            string          `json:"id" bson:"_id,omitempty"`
	WorkstationID string          `json:"workstation_id" bson:"workstation_id"`
	Type          MaintenanceType `json:"type" bson:"type"`
	PerformedBy   string          `json:"performed_by" bson:"performed_by"`
	Notes         string          `json:"notes,omitempty" bson:"notes,omitempty"`
	PerformedAt   time.Time       `json:"performed_at" bson:"performed_at"`
}
