package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	// Either a registered user or the guest triple, never both.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	GuestName  string `gorm:"size:100" json:"guest_name"`
	GuestEmail string `gorm:"size:100" json:"guest_email"`
	GuestPhone string `gorm:"size:20" json:"guest_phone"`

	ServiceTypeID *uint        `json:"service_type_id"`
	ServiceType   *ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_type,omitempty"`

	StartTime time.Time `gorm:"index" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'BOOKED'" json:"status"`

	Notes          string `gorm:"size:255" json:"notes"`
	CreationSource string `gorm:"size:20" json:"creation_source"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientName resolves the display name for both booking channels.
func (a *Appointment) ClientName() string {
	if a.User != nil {
		return a.User.Name
	}
	return a.GuestName
}

func (a *Appointment) IsGuest() bool {
	return a.UserID == nil
}
