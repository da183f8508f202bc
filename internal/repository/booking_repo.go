package repository

import (
	"context"
	"time"

	"andaman/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ServiceID    int64     `gorm:"column:service_id;index"`
	VendorUserID int64     `gorm:"column:vendor_user_id;index"`
	TravelerID   int64     `gorm:"column:traveler_id"`
	Date         time.Time `gorm:"column:date"`
	Guests       int       `gorm:"column:guests"`
	TotalAmount  float64   `gorm:"column:total_amount"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.VendorBooking {
	return &domain.VendorBooking{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		VendorUserID: m.VendorUserID,
		TravelerID:   m.TravelerID,
		Date:         m.Date,
		Guests:       m.Guests,
		TotalAmount:  m.TotalAmount,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.VendorBooking) bookingModel {
	return bookingModel{
		ID:           b.ID,
		ServiceID:    b.ServiceID,
		VendorUserID: b.VendorUserID,
		TravelerID:   b.TravelerID,
		Date:         b.Date,
		Guests:       b.Guests,
		TotalAmount:  b.TotalAmount,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.VendorBooking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// VendorBookingRow carries the joined traveler/service names for list views.
type VendorBookingRow struct {
	ID           int64
	ServiceID    int64
	TravelerID   int64
	TravelerName string
	ServiceName  string
	Date         time.Time
	Guests       int
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
}

func (r *BookingRepository) ListByVendor(ctx context.Context, vendorUserID int64, limit int) ([]VendorBookingRow, error) {
	var rows []VendorBookingRow
	q := `
SELECT b.id, b.service_id, b.traveler_id,
       u.name  AS traveler_name,
       s.name  AS service_name,
       b.date, b.guests, b.total_amount, b.status, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
JOIN users u    ON u.id = b.traveler_id
WHERE b.vendor_user_id = ?
ORDER BY b.created_at DESC
LIMIT ?
`
	tx := r.db.WithContext(ctx).Raw(q, vendorUserID, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) CountActiveByVendor(ctx context.Context, vendorUserID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("vendor_user_id = ? AND status IN ?", vendorUserID,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) SumEarningsByVendor(ctx context.Context, vendorUserID int64) (float64, error) {
	var total float64
	q := `
SELECT COALESCE(SUM(total_amount), 0)
FROM bookings
WHERE vendor_user_id = ? AND status IN ('confirmed', 'completed')
`
	tx := r.db.WithContext(ctx).Raw(q, vendorUserID).Scan(&total)
	return total, tx.Error
}
