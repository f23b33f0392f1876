package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the till.
const (
	PaymentCash     = "CASH"
	PaymentCard     = "CARD"
	PaymentTransfer = "TRANSFER"
)

const (
	SaleCompleted = "COMPLETED"
	SaleCancelled = "CANCELLED"
	SaleRefunded  = "REFUNDED"
)

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date          time.Time       `gorm:"index" json:"date"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2)" json:"total_amount"`
	Status        string          `gorm:"size:20;not null" json:"status"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`

	// Optional link to a registered client; guests carry just a name.
	ClientID  *uint  `json:"client_id"`
	Client    *User  `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`
	GuestName string `gorm:"size:100" json:"guest_name"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedByID *uint `json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by,omitempty"`

	// Checkout requests carry one so a retried submit cannot charge twice.
	IdempotencyKey string `gorm:"size:36;uniqueIndex" json:"idempotency_key"`

	Items []SaleItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

type SaleItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `gorm:"index" json:"sale_id"`

	ItemName string          `gorm:"size:100;not null" json:"item_name"`
	ItemType string          `gorm:"size:20;not null" json:"item_type"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `gorm:"type:numeric(10,2)" json:"subtotal"`

	ServiceTypeID *uint `json:"service_type_id"`
	ProductID     *uint `json:"product_id"`
	PromotionID   *uint `json:"promotion_id"`

	// Appointment paid through this line; completed at checkout.
	AppointmentID *uint `json:"appointment_id"`

	// Professional credited with the work.
	BarberID *uint   `json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`
}
