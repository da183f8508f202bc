package auth

import (
	"context"

	"andaman/internal/domain"
)

// UserRepository defines the user persistence the auth service needs
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// VendorRepository creates the vendor profile attached to a vendor account
type VendorRepository interface {
	Create(ctx context.Context, p *domain.VendorProfile) error
}
