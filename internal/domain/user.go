package domain

import "time"

// Numeric role ids, mirrored into JWT claims.
const (
	RoleAdmin    int64 = 1
	RoleTraveler int64 = 2
	RoleVendor   int64 = 3
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	RoleID       int64     `json:"role_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsVendor() bool { return u.RoleID == RoleVendor }
