package repository

import (
	"context"
	"time"

	"andaman/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	ServiceID    int64     `gorm:"column:service_id;index"`
	VendorUserID int64     `gorm:"column:vendor_user_id;index"`
	TravelerID   int64     `gorm:"column:traveler_id"`
	Rating       int       `gorm:"column:rating"`
	Comment      *string   `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.VendorReview {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.VendorReview{
		ID:           m.ID,
		ServiceID:    m.ServiceID,
		VendorUserID: m.VendorUserID,
		TravelerID:   m.TravelerID,
		Rating:       m.Rating,
		Comment:      comment,
		CreatedAt:    m.CreatedAt,
	}
}

func toReviewModel(v *domain.VendorReview) reviewModel {
	var comment *string
	if v.Comment != "" {
		c := v.Comment
		comment = &c
	}

	return reviewModel{
		ID:           v.ID,
		ServiceID:    v.ServiceID,
		VendorUserID: v.VendorUserID,
		TravelerID:   v.TravelerID,
		Rating:       v.Rating,
		Comment:      comment,
		CreatedAt:    v.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, v *domain.VendorReview) error {
	m := toReviewModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainReview(m)
	return nil
}

// VendorReviewRow carries joined traveler/service names for list views.
type VendorReviewRow struct {
	ID           int64
	ServiceID    int64
	TravelerID   int64
	TravelerName string
	ServiceName  string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

func (r *ReviewRepository) ListByVendor(ctx context.Context, vendorUserID int64, limit int) ([]VendorReviewRow, error) {
	var rows []VendorReviewRow
	q := `
SELECT rv.id, rv.service_id, rv.traveler_id,
       u.name AS traveler_name,
       s.name AS service_name,
       rv.rating, COALESCE(rv.comment, '') AS comment, rv.created_at
FROM reviews rv
JOIN services s ON s.id = rv.service_id
JOIN users u    ON u.id = rv.traveler_id
WHERE rv.vendor_user_id = ?
ORDER BY rv.created_at DESC
LIMIT ?
`
	tx := r.db.WithContext(ctx).Raw(q, vendorUserID, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// AvgRatingByVendor returns nil when the vendor has no reviews, so callers
// can tell "no score yet" apart from a genuine zero.
func (r *ReviewRepository) AvgRatingByVendor(ctx context.Context, vendorUserID int64) (*float64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	q := `
SELECT COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS cnt
FROM reviews
WHERE vendor_user_id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, vendorUserID).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if row.Cnt == 0 {
		return nil, nil
	}
	return &row.Avg, nil
}
