package models

import "time"

// Roles understood by the auth middleware.
const (
	RoleClient      = "CLIENT"
	RoleBarber      = "BARBER"
	RoleAdmin       = "ADMIN"
	RoleReception   = "RECEPTION"
	RoleAdminBarber = "ADMIN_BARBER"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'CLIENT'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStaff reports whether the role may operate the POS and calendar
// on behalf of the shop.
func (u *User) IsStaff() bool {
	switch u.Role {
	case RoleAdmin, RoleBarber, RoleReception, RoleAdminBarber:
		return true
	}
	return false
}
