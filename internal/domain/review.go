package domain

import "time"

type VendorReview struct {
	ID           int64     `json:"id"`
	ServiceID    int64     `json:"service_id"`
	VendorUserID int64     `json:"vendor_user_id"`
	TravelerID   int64     `json:"traveler_id"`
	TravelerName string    `json:"traveler_name,omitempty"`
	ServiceName  string    `json:"service_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
