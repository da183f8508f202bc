package services

import (
	"context"

	"andaman/internal/domain"
)

// ProfileRepository resolves the vendor profile gating the creation form
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.VendorProfile, error)
}

// ServiceRepository persists services and their image associations
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.VendorService) error
	GetByID(ctx context.Context, id int64) (*domain.VendorService, error)
	UpdateImages(ctx context.Context, id int64, images string) error
}

// BookingNotifier pushes realtime events to connected vendors. Optional;
// a nil notifier disables pushes.
type BookingNotifier interface {
	NotifyServiceCreated(vendorUserID, serviceID int64, name string)
}
