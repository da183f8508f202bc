package domain

import (
	"strings"
	"time"
)

type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "active"
	ServiceInactive ServiceStatus = "inactive"
)

// VendorService is a bookable offering created through the service form.
// Only the fields for the service's own base type are populated; the rest
// stay at their zero value and are omitted from JSON.
type VendorService struct {
	ID             int64         `json:"id"`
	ProviderUserID int64         `json:"provider_user_id"`
	IslandID       int64         `json:"island_id"`
	Type           string        `json:"type"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Price          float64       `json:"price"`
	Status         ServiceStatus `json:"status"`

	// Rental
	RentalUnit        string `json:"rental_unit,omitempty"`
	QuantityAvailable int    `json:"quantity_available,omitempty"`

	// Activity
	Duration     int    `json:"duration,omitempty"`
	DurationUnit string `json:"duration_unit,omitempty"`

	// Transport
	VehicleType        string `json:"vehicle_type,omitempty"`
	CapacityPassengers string `json:"capacity_passengers,omitempty"`

	// JSON-encoded {days, notes} object, see ServiceAvailability.
	Availability string `json:"availability,omitempty"`

	GeneralAmenities  []string `json:"general_amenities,omitempty"`
	EquipmentProvided []string `json:"equipment_provided,omitempty"`

	// JSON-encoded []string of image URLs, associated after creation.
	Images string `json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceAvailability is the wire shape stored in the availability column.
type ServiceAvailability struct {
	Days  []string `json:"days"`
	Notes string   `json:"notes,omitempty"`
}

// BaseType returns the portion of a service or vendor type before the first
// slash: "transport/car" -> "transport".
func BaseType(t string) string {
	if i := strings.IndexByte(t, '/'); i >= 0 {
		return t[:i]
	}
	return t
}
