package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType is immutable reference data: what a haircut costs and
// how long it blocks the calendar.
type ServiceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	DurationMin int             `json:"duration_min"`
	Color       string          `gorm:"size:20" json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string          `gorm:"size:100;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Stock int             `json:"stock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Promotion is either a fixed-price line (packages positive, flat
// discounts negative) or a dynamic percentage applied to the cart.
type Promotion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name               string          `gorm:"size:100;not null" json:"name"`
	Description        string          `gorm:"size:255" json:"description"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2)" json:"discount_percentage"`
	ValidUntil         *time.Time      `json:"valid_until"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDynamic mirrors the POS rule: a percentage with no fixed price
// means the value depends on the rest of the cart.
func (p *Promotion) IsDynamic() bool {
	return p.DiscountPercentage.IsPositive() && p.Price.IsZero()
}
