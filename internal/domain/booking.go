package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type VendorBooking struct {
	ID           int64         `json:"id"`
	ServiceID    int64         `json:"service_id"`
	VendorUserID int64         `json:"vendor_user_id"`
	TravelerID   int64         `json:"traveler_id"`
	TravelerName string        `json:"traveler_name,omitempty"`
	ServiceName  string        `json:"service_name,omitempty"`
	Date         time.Time     `json:"date"`
	Guests       int           `json:"guests"`
	TotalAmount  float64       `json:"total_amount"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
