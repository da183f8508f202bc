package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"andaman/internal/domain"
	"andaman/internal/vendorapp/api"
)

// Phase is the wizard's position in the two-phase create flow. Details are
// submitted first; the assigned id then anchors the image association. The
// flow never moves backwards past an assigned id, so a details retry after
// a successful create is impossible by construction.
type Phase string

const (
	PhaseDraft         Phase = "draft"
	PhaseDetailsPending Phase = "details_pending"
	PhaseIDAssigned    Phase = "id_assigned"
	PhaseImagesPending Phase = "images_pending"
	PhaseComplete      Phase = "complete"
)

// HotelRedirect is where hotel vendors are sent; their listings live in a
// different flow entirely.
const HotelRedirect = "/my-hotels"

var (
	ErrHotelVendor      = errors.New("hotel vendors manage listings through the hotel flow")
	ErrAlreadySubmitted = errors.New("details already submitted")
	ErrNoServiceID      = errors.New("images cannot be associated before the service is created")
	ErrBusy             = errors.New("a submission is already in flight")
)

// ValidationError names the first form field that failed, in form order.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// DetailsSubmissionError wraps a phase-1 failure. The form stays editable
// and the server's message, when present, is shown verbatim.
type DetailsSubmissionError struct{ Err error }

func (e *DetailsSubmissionError) Error() string { return "could not create service: " + e.Err.Error() }
func (e *DetailsSubmissionError) Unwrap() error { return e.Err }

// ImageAssociationError wraps a phase-2 failure. The service itself exists;
// only the image step is retried.
type ImageAssociationError struct {
	ServiceID int64
	Err       error
}

func (e *ImageAssociationError) Error() string {
	return fmt.Sprintf("service %d created but images were not attached: %v", e.ServiceID, e.Err)
}
func (e *ImageAssociationError) Unwrap() error { return e.Err }

// Form holds the raw field values as entered. Everything is a string (or a
// string slice) until validation parses it; numbers are only interpreted at
// submit time.
type Form struct {
	IslandID           string
	Name               string
	Description        string
	Price              string
	RentalUnit         string
	QuantityAvailable  string
	Duration           string
	DurationUnit       string
	VehicleType        string
	CapacityPassengers string
	AvailabilityDays   []string
	AvailabilityNotes  string
	GeneralAmenities   []string
	EquipmentProvided  []string
	ImageURLs          []string
}

// Wizard drives one service creation for one vendor profile.
type Wizard struct {
	client *api.Client

	serviceType string
	phase       Phase
	serviceID   int64
	lastErr     error
}

// New starts a wizard for the given profile. The service type is inherited
// from the profile, subtype included. Hotel profiles are rejected up front.
func New(client *api.Client, profile *domain.VendorProfile) (*Wizard, error) {
	if profile == nil {
		return nil, errors.New("vendor profile is required")
	}
	if domain.BaseType(profile.Type) == domain.VendorTypeHotel {
		return nil, ErrHotelVendor
	}
	return &Wizard{
		client:      client,
		serviceType: profile.Type,
		phase:       PhaseDraft,
	}, nil
}

func (w *Wizard) Phase() Phase        { return w.phase }
func (w *Wizard) ServiceType() string { return w.serviceType }
func (w *Wizard) ServiceID() int64    { return w.serviceID }

// LastError returns the most recent submission failure, nil after success.
func (w *Wizard) LastError() error { return w.lastErr }

// Validate applies the form rules in field order and reports the first
// violation. Shared fields come first, then the rules for the wizard's base
// type; fields belonging to other base types are ignored.
func (w *Wizard) Validate(form Form) *ValidationError {
	if strings.TrimSpace(form.IslandID) == "" {
		return &ValidationError{Field: "island_id", Message: "select an island"}
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(form.IslandID), 10, 64); err != nil || id <= 0 {
		return &ValidationError{Field: "island_id", Message: "select an island"}
	}
	if strings.TrimSpace(form.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return &ValidationError{Field: "price", Message: "price must be a number"}
	}
	if price <= 0 {
		return &ValidationError{Field: "price", Message: "price must be greater than zero"}
	}

	switch domain.BaseType(w.serviceType) {
	case domain.VendorTypeRental:
		if strings.TrimSpace(form.RentalUnit) == "" {
			return &ValidationError{Field: "rental_unit", Message: "rental unit is required"}
		}
		qty, err := strconv.Atoi(strings.TrimSpace(form.QuantityAvailable))
		if err != nil || qty <= 0 {
			return &ValidationError{Field: "quantity_available", Message: "quantity must be a positive whole number"}
		}
	case domain.VendorTypeActivity:
		if strings.TrimSpace(form.DurationUnit) == "" {
			return &ValidationError{Field: "duration_unit", Message: "duration unit is required"}
		}
		dur, err := strconv.Atoi(strings.TrimSpace(form.Duration))
		if err != nil || dur <= 0 {
			return &ValidationError{Field: "duration", Message: "duration must be a positive whole number"}
		}
	case domain.VendorTypeTransport:
		if strings.TrimSpace(form.VehicleType) == "" {
			return &ValidationError{Field: "vehicle_type", Message: "vehicle type is required"}
		}
		if strings.TrimSpace(form.CapacityPassengers) == "" {
			return &ValidationError{Field: "capacity_passengers", Message: "passenger capacity is required"}
		}
	}

	return nil
}

// BuildPayload assembles the phase-1 request body. Only fields that carry a
// value for this service's base type appear; a rental payload has no
// duration key and a transport payload no rental_unit. Availability is sent
// as a JSON-encoded {days, notes} string when any day is picked.
func (w *Wizard) BuildPayload(form Form) (map[string]any, error) {
	if verr := w.Validate(form); verr != nil {
		return nil, verr
	}

	islandID, _ := strconv.ParseInt(strings.TrimSpace(form.IslandID), 10, 64)
	price, _ := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)

	payload := map[string]any{
		"type":      w.serviceType,
		"island_id": islandID,
		"name":      strings.TrimSpace(form.Name),
		"price":     price,
	}
	if desc := strings.TrimSpace(form.Description); desc != "" {
		payload["description"] = desc
	}

	switch domain.BaseType(w.serviceType) {
	case domain.VendorTypeRental:
		qty, _ := strconv.Atoi(strings.TrimSpace(form.QuantityAvailable))
		payload["rental_unit"] = strings.TrimSpace(form.RentalUnit)
		payload["quantity_available"] = qty
	case domain.VendorTypeActivity:
		dur, _ := strconv.Atoi(strings.TrimSpace(form.Duration))
		payload["duration"] = dur
		payload["duration_unit"] = strings.TrimSpace(form.DurationUnit)
	case domain.VendorTypeTransport:
		payload["vehicle_type"] = strings.TrimSpace(form.VehicleType)
		payload["capacity_passengers"] = strings.TrimSpace(form.CapacityPassengers)
	}

	if len(form.AvailabilityDays) > 0 {
		encoded, err := json.Marshal(domain.ServiceAvailability{
			Days:  form.AvailabilityDays,
			Notes: strings.TrimSpace(form.AvailabilityNotes),
		})
		if err != nil {
			return nil, err
		}
		payload["availability"] = string(encoded)
	}
	if len(form.GeneralAmenities) > 0 {
		payload["general_amenities"] = form.GeneralAmenities
	}
	if len(form.EquipmentProvided) > 0 {
		payload["equipment_provided"] = form.EquipmentProvided
	}

	return payload, nil
}

// SubmitDetails runs phase 1. On success the wizard holds the assigned id
// and will refuse a second submit; on failure it drops back to draft so the
// vendor can correct the form and try again by hand.
func (w *Wizard) SubmitDetails(ctx context.Context, form Form) error {
	switch w.phase {
	case PhaseDraft:
	case PhaseDetailsPending, PhaseImagesPending:
		return ErrBusy
	default:
		return ErrAlreadySubmitted
	}

	payload, err := w.BuildPayload(form)
	if err != nil {
		w.lastErr = err
		return err
	}

	w.phase = PhaseDetailsPending
	id, err := w.client.CreateService(ctx, payload)
	if err != nil {
		w.phase = PhaseDraft
		w.lastErr = &DetailsSubmissionError{Err: err}
		return w.lastErr
	}

	w.serviceID = id
	w.phase = PhaseIDAssigned
	w.lastErr = nil
	return nil
}

// SubmitImages runs phase 2 against the id from phase 1. With no images
// selected the service is already complete and no request is made. On
// failure the wizard stays at the id-assigned phase so only this step is
// retried; the created service is never resubmitted.
func (w *Wizard) SubmitImages(ctx context.Context, imageURLs []string) error {
	switch w.phase {
	case PhaseIDAssigned:
	case PhaseDraft, PhaseDetailsPending:
		return ErrNoServiceID
	case PhaseImagesPending:
		return ErrBusy
	case PhaseComplete:
		return ErrAlreadySubmitted
	}

	if len(imageURLs) == 0 {
		w.phase = PhaseComplete
		w.lastErr = nil
		return nil
	}

	w.phase = PhaseImagesPending
	if err := w.client.AssociateImages(ctx, w.serviceID, imageURLs); err != nil {
		w.phase = PhaseIDAssigned
		w.lastErr = &ImageAssociationError{ServiceID: w.serviceID, Err: err}
		return w.lastErr
	}

	w.phase = PhaseComplete
	w.lastErr = nil
	return nil
}

// Submit runs both phases in order. It exists for flows that collect the
// whole form, images included, before a single confirm.
func (w *Wizard) Submit(ctx context.Context, form Form) error {
	if w.phase == PhaseDraft {
		if err := w.SubmitDetails(ctx, form); err != nil {
			return err
		}
	}
	return w.SubmitImages(ctx, form.ImageURLs)
}
