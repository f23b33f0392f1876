package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	LeadNew       = "NEW"
	LeadContacted = "CONTACTED"
	LeadQualified = "QUALIFIED"
	LeadConverted = "CONVERTED"
)

const (
	OpportunityPending = "PENDING_APPOINTMENT"
	OpportunityWon     = "WON"
	OpportunityLost    = "LOST"
)

type Lead struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Source string `gorm:"size:50" json:"source"`
	Status string `gorm:"size:20;default:'NEW'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Opportunity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	LeadID uint `gorm:"index" json:"lead_id"`
	Lead   Lead `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lead"`

	ServiceTypeID *uint        `json:"service_type_id"`
	ServiceType   *ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_type,omitempty"`

	Status         string          `gorm:"size:30;default:'PENDING_APPOINTMENT'" json:"status"`
	EstimatedValue decimal.Decimal `gorm:"type:numeric(10,2)" json:"estimated_value"`
	FollowUpNotes  string          `gorm:"size:500" json:"follow_up_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
