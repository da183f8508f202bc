package repository

import (
	"context"
	"errors"
	"time"

	"andaman/internal/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

type vendorProfileModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id;uniqueIndex"`
	BusinessName string    `gorm:"column:business_name"`
	Type         string    `gorm:"column:type"`
	Verified     int       `gorm:"column:verified"`
	Address      *string   `gorm:"column:address"`
	Email        *string   `gorm:"column:email"`
	Phone        *string   `gorm:"column:phone"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (vendorProfileModel) TableName() string { return "vendor_profiles" }

func toDomainVendorProfile(m vendorProfileModel) *domain.VendorProfile {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	return &domain.VendorProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		BusinessName: m.BusinessName,
		Type:         m.Type,
		Verified:     m.Verified,
		Address:      deref(m.Address),
		Email:        deref(m.Email),
		Phone:        deref(m.Phone),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toVendorProfileModel(p *domain.VendorProfile) vendorProfileModel {
	ref := func(s string) *string {
		if s == "" {
			return nil
		}
		v := s
		return &v
	}

	return vendorProfileModel{
		ID:           p.ID,
		UserID:       p.UserID,
		BusinessName: p.BusinessName,
		Type:         p.Type,
		Verified:     p.Verified,
		Address:      ref(p.Address),
		Email:        ref(p.Email),
		Phone:        ref(p.Phone),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *VendorRepository) Create(ctx context.Context, p *domain.VendorProfile) error {
	m := toVendorProfileModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainVendorProfile(m)
	return nil
}

// GetByUserID returns (nil, nil) when no profile row exists for the user.
// The API layer relies on that to answer success-with-null instead of an
// error, so "no profile" and "query failed" stay distinguishable.
func (r *VendorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.VendorProfile, error) {
	var m vendorProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainVendorProfile(m), nil
}

func (r *VendorRepository) SetVerified(ctx context.Context, userID int64, verified int) error {
	tx := r.db.WithContext(ctx).
		Model(&vendorProfileModel{}).
		Where("user_id = ?", userID).
		Update("verified", verified)
	return tx.Error
}
