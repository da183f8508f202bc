package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"andaman/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	profiles ProfileRepository
	repo     ServiceRepository
	notifier BookingNotifier
}

func NewService(profiles ProfileRepository, repo ServiceRepository, notifier BookingNotifier) *Service {
	return &Service{
		profiles: profiles,
		repo:     repo,
		notifier: notifier,
	}
}

// Create persists the phase-1 details and returns the new entity. Image
// association is a separate call; a service is complete without images.
func (s *Service) Create(ctx context.Context, userID int64, req CreateServiceRequest) (*domain.VendorService, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoVendorProfile
	}
	if domain.BaseType(profile.Type) == domain.VendorTypeHotel {
		return nil, ErrWrongVendorType
	}

	if err := validateCreate(req); err != nil {
		return nil, err
	}

	svc := &domain.VendorService{
		ProviderUserID:    userID,
		IslandID:          req.IslandID,
		Type:              req.Type,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Status:            domain.ServiceActive,
		GeneralAmenities:  req.GeneralAmenities,
		EquipmentProvided: req.EquipmentProvided,
	}

	switch domain.BaseType(req.Type) {
	case domain.VendorTypeRental:
		svc.RentalUnit = *req.RentalUnit
		svc.QuantityAvailable = *req.QuantityAvailable
	case domain.VendorTypeActivity:
		svc.Duration = *req.Duration
		svc.DurationUnit = *req.DurationUnit
	case domain.VendorTypeTransport:
		svc.VehicleType = *req.VehicleType
		svc.CapacityPassengers = *req.CapacityPassengers
	}

	if req.Availability != nil {
		var av domain.ServiceAvailability
		if err := json.Unmarshal([]byte(*req.Availability), &av); err != nil {
			return nil, fmt.Errorf("%w: availability is not a valid JSON object", ErrValidation)
		}
		svc.Availability = *req.Availability
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_services_provider_name" {
				return nil, ErrDuplicateService
			}
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyServiceCreated(userID, svc.ID, svc.Name)
	}

	return svc, nil
}

// AttachImages stores the JSON image list on an already-created service.
// It never touches the details written in phase 1.
func (s *Service) AttachImages(ctx context.Context, userID, serviceID int64, images string) error {
	svc, err := s.repo.GetByID(ctx, serviceID)
	if err != nil {
		return ErrNotFound
	}
	if svc.ProviderUserID != userID {
		return ErrForbidden
	}

	var urls []string
	if err := json.Unmarshal([]byte(images), &urls); err != nil {
		return fmt.Errorf("%w: images must be a JSON-encoded array of URLs", ErrValidation)
	}

	return s.repo.UpdateImages(ctx, serviceID, images)
}

// validateCreate mirrors the form's ordered rules: common fields first, then
// the rules for the selected base type. A field for another base type being
// present is harmless; a required one missing blocks the create.
func validateCreate(req CreateServiceRequest) error {
	if req.Type == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	if req.IslandID == 0 {
		return fmt.Errorf("%w: island_id is required", ErrValidation)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) || req.Price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}

	switch domain.BaseType(req.Type) {
	case domain.VendorTypeRental:
		if req.RentalUnit == nil || *req.RentalUnit == "" {
			return fmt.Errorf("%w: rental_unit is required for rentals", ErrValidation)
		}
		if req.QuantityAvailable == nil || *req.QuantityAvailable <= 0 {
			return fmt.Errorf("%w: quantity_available must be a positive integer", ErrValidation)
		}
	case domain.VendorTypeActivity:
		if req.DurationUnit == nil || *req.DurationUnit == "" {
			return fmt.Errorf("%w: duration_unit is required for activities", ErrValidation)
		}
		if req.Duration == nil || *req.Duration <= 0 {
			return fmt.Errorf("%w: duration must be a positive integer", ErrValidation)
		}
	case domain.VendorTypeTransport:
		if req.VehicleType == nil || *req.VehicleType == "" {
			return fmt.Errorf("%w: vehicle_type is required for transport", ErrValidation)
		}
		if req.CapacityPassengers == nil || *req.CapacityPassengers == "" {
			return fmt.Errorf("%w: capacity_passengers is required for transport", ErrValidation)
		}
	case domain.VendorTypeHotel:
		return fmt.Errorf("%w: hotel listings are managed elsewhere", ErrValidation)
	default:
		return fmt.Errorf("%w: unknown service type %q", ErrValidation, req.Type)
	}

	return nil
}
