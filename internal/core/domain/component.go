package domain

import (
	"errors"
	"time"
)

// ComponentCategory classifies what kind of hardware a component is.
type ComponentCategory string

const (
	CategoryCPU         ComponentCategory = "cpu"
	CategoryGPU         ComponentCategory = "gpu"
	CategoryRAM         ComponentCategory = "ram"
	CategoryStorage     ComponentCategory = "storage"
	CategoryMotherboard ComponentCategory = "motherboard"
	CategoryPSU         ComponentCategory = "psu"
	CategoryPeripheral  ComponentCategory = "peripheral"
)

// ComponentStatus is the lifecycle state of a component.
type ComponentStatus string

const (
	ComponentInUse     ComponentStatus = "in_use"
	ComponentInStorage ComponentStatus = "in_storage"
	ComponentFaulty    ComponentStatus = "faulty"
	ComponentRetired   ComponentStatus = "retired"
)

var ErrComponentNotFound = errors.New("component not found")
var ErrDuplicateSerial = errors.New("serial number already registered")

var componentCategories = map[ComponentCategory]struct{}{
	CategoryCPU: {}, CategoryGPU: {}, CategoryRAM: {}, CategoryStorage: {},
	CategoryMotherboard: {}, CategoryPSU: {}, CategoryPeripheral: {},
}

var componentStatuses = map[ComponentStatus]struct{}{
	ComponentInUse: {}, ComponentInStorage: {}, ComponentFaulty: {}, ComponentRetired: {},
}

// Valid reports whether the category is one of the known lookup values.
func (c ComponentCategory) Valid() bool {
	_, ok := componentCategories[c]
	return ok
}

// Valid reports whether the status is one of the known lookup values.
func (s ComponentStatus) Valid() bool {
	_, ok := componentStatuses[s]
	return ok
}

// Component is a single tracked hardware part. WorkstationID is empty while
// the component sits in storage.
type Component struct {
	ID             string            `json:"id" bson:"_id,omitempty"`
	SerialNumber   string            `json:"serial_number" bson:"serial_number"`
	Name           string            `json:"name" bson:"name"`
	Category       ComponentCategory `json:"category" bson:"category"`
	Status         ComponentStatus   `json:"status" bson:"status"`
	WorkstationID  string            `json:"workstation_id,omitempty" bson:"workstation_id,omitempty"`
	PurchaseDate   *time.Time        `json:"purchase_date,omitempty" bson:"purchase_date,omitempty"`
	WarrantyExpiry *time.Time        `json:"warranty_expiry,omitempty" bson:"warranty_expiry,omitempty"`
	Notes          string            `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
}

// ComponentFilter narrows List queries. Zero-valued fields are ignored.
type ComponentFilter struct {
	Category      ComponentCategory
	Status        ComponentStatus
	WorkstationID string
}
