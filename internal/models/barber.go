package models

import "time"

// Barber is the bookable professional. Inactive barbers refuse new
// bookings but keep their appointment history.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Color    string `gorm:"size:20" json:"color"`
	Active   bool   `gorm:"default:true" json:"active"`

	// Optional login for the calendar/dashboard.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
