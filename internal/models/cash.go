package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashWithdrawal struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Description string          `gorm:"size:255" json:"description"`

	PerformedByID uint  `json:"performed_by_id"`
	PerformedBy   *User `gorm:"foreignKey:PerformedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"performed_by,omitempty"`

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}

// CashCut is the end-of-shift reconciliation: what the system expected
// in the drawer versus what was physically counted.
type CashCut struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`

	ExpectedAmount decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"expected_amount"`
	CountedAmount  *decimal.Decimal `gorm:"type:numeric(10,2)" json:"counted_amount"`
	Discrepancy    decimal.Decimal  `gorm:"type:numeric(10,2)" json:"discrepancy"`
	Notes          string           `gorm:"size:500" json:"notes"`

	PerformedByID uint  `json:"performed_by_id"`
	PerformedBy   *User `gorm:"foreignKey:PerformedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"performed_by,omitempty"`
}
