package services

// CreateServiceRequest is the phase-1 payload. The form prunes keys that do
// not apply to the selected base type before sending, so every conditional
// field is a pointer: absent means "not sent", which is not the same thing
// as a zero value.
type CreateServiceRequest struct {
	// Shared fields are validated by validateCreate in form order so the
	// error message always names the first offending field.
	Type        string  `json:"type"`
	IslandID    int64   `json:"island_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	RentalUnit        *string `json:"rental_unit"`
	QuantityAvailable *int    `json:"quantity_available"`

	Duration     *int    `json:"duration"`
	DurationUnit *string `json:"duration_unit"`

	VehicleType        *string `json:"vehicle_type"`
	CapacityPassengers *string `json:"capacity_passengers"`

	// JSON-encoded {days, notes} object.
	Availability *string `json:"availability"`

	GeneralAmenities  []string `json:"general_amenities"`
	EquipmentProvided []string `json:"equipment_provided"`
}

// AttachImagesRequest is the phase-2 payload keyed by the service id in the
// URL. Images is a JSON-encoded []string of uploaded URLs.
type AttachImagesRequest struct {
	Images string `json:"images" binding:"required"`
}
