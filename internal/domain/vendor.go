package domain

import "time"

// Vendor business types. A profile type may carry a subtype after a slash
// (e.g. "transport/car"); BaseType strips it.
const (
	VendorTypeHotel     = "hotel"
	VendorTypeRental    = "rental"
	VendorTypeActivity  = "activity"
	VendorTypeTransport = "transport"
)

type VendorProfile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Type         string    `json:"type"`
	Verified     int       `json:"verified"`
	Address      string    `json:"address,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *VendorProfile) IsVerified() bool { return p.Verified == 1 }

// VendorStats is a derived aggregate, recomputed on every dashboard load.
// ReviewScore is nil when the vendor has no reviews yet; the dashboard
// renders that as "N/A", never as zero.
type VendorStats struct {
	TotalServices  int64    `json:"totalServices"`
	ActiveBookings int64    `json:"activeBookings"`
	TotalEarnings  float64  `json:"totalEarnings"`
	ReviewScore    *float64 `json:"reviewScore"`
}
