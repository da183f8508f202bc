package auth

import (
	"context"

	"andaman/internal/domain"
	jwtsvc "andaman/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var knownVendorTypes = map[string]bool{
	domain.VendorTypeHotel:     true,
	domain.VendorTypeRental:    true,
	domain.VendorTypeActivity:  true,
	domain.VendorTypeTransport: true,
}

type Service struct {
	users   UserRepository
	vendors VendorRepository
	jwt     *jwtsvc.Service
}

func NewService(users UserRepository, vendors VendorRepository, jwt *jwtsvc.Service) *Service {
	return &Service{
		users:   users,
		vendors: vendors,
		jwt:     jwt,
	}
}

func (s *Service) RegisterTraveler(ctx context.Context, req RegisterTravelerRequest) (*domain.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       domain.RoleTraveler,
		Name:         req.Name,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email, u.RoleID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// RegisterVendor creates the account and its profile. The profile starts
// unverified; an admin flips verified to 1 before dashboard data opens up.
func (s *Service) RegisterVendor(ctx context.Context, req RegisterVendorRequest) (*domain.User, string, error) {
	if !knownVendorTypes[domain.BaseType(req.BusinessType)] {
		return nil, "", ErrUnknownVendorType
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       domain.RoleVendor,
		Name:         req.Name,
		Phone:        req.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	profile := &domain.VendorProfile{
		UserID:       u.ID,
		BusinessName: req.BusinessName,
		Type:         req.BusinessType,
		Verified:     0,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        req.Phone,
	}
	if err := s.vendors.Create(ctx, profile); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email, u.RoleID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(u.ID, u.Email, u.RoleID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
