package pos

import (
	"github.com/shopspring/decimal"

	"github.com/stylehub/barber-api/internal/httperr"
)

type ItemType string

const (
	ItemService   ItemType = "SERVICE"
	ItemProduct   ItemType = "PRODUCT"
	ItemPromotion ItemType = "PROMOTION"
)

// CartItem is one line of a checkout session. Dynamic promotions have
// their price recomputed from the rest of the cart on every mutation.
type CartItem struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Type     ItemType        `json:"type"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`

	AppointmentID *uint `json:"appointment_id,omitempty"`
	BarberID      *uint `json:"barber_id,omitempty"`

	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsDynamic          bool            `json:"is_dynamic"`
}

// Cart is the session-scoped pricing aggregate. It carries no global
// state: callers hold one per register session.
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func NewCart() *Cart {
	return &Cart{Total: decimal.Zero}
}

// AddItem appends or merges a line. A SERVICE or PRODUCT already in
// the cart bumps its quantity; promotions always open a new line, and
// so do appointment-linked lines, since every linked appointment must
// keep its own line for completion at checkout.
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	if item.Type != ItemPromotion && item.AppointmentID == nil {
		for i := range c.Items {
			if c.Items[i].ID == item.ID &&
				c.Items[i].Type == item.Type &&
				c.Items[i].AppointmentID == nil {
				c.Items[i].Quantity++
				c.Recompute()
				return
			}
		}
	}

	c.Items = append(c.Items, item)
	c.Recompute()
}

// RemoveItem drops every line with the given id and type. Service,
// product and promotion ids come from separate tables, so the id alone
// does not identify a line.
func (c *Cart) RemoveItem(id uint, t ItemType) error {
	kept := c.Items[:0]
	removed := false
	for _, it := range c.Items {
		if it.ID == id && it.Type == t {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept

	if !removed {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	c.Recompute()
	return nil
}

// SetItemBarber credits a professional with the line's revenue.
func (c *Cart) SetItemBarber(id uint, t ItemType, barberID uint) error {
	found := false
	for i := range c.Items {
		if c.Items[i].ID == id && c.Items[i].Type == t {
			c.Items[i].BarberID = &barberID
			found = true
		}
	}
	if !found {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return nil
}

func (c *Cart) Clear() {
	c.Items = nil
	c.Total = decimal.Zero
}

// Recompute reprices the cart in three passes: subtotal of non-dynamic
// lines, dynamic promotion values against that subtotal, then the
// total. Deterministic and idempotent: with no intervening mutation a
// second call yields the same figures.
func (c *Cart) Recompute() decimal.Decimal {
	base := decimal.Zero
	for _, it := range c.Items {
		if it.IsDynamic {
			continue
		}
		base = base.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	total := decimal.Zero
	for i := range c.Items {
		it := &c.Items[i]
		if it.IsDynamic && it.DiscountPercentage.IsPositive() {
			it.Price = base.Mul(it.DiscountPercentage).Div(decimal.NewFromInt(100)).Neg()
		}
		it.Subtotal = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(it.Subtotal)
	}

	c.Total = total
	return total
}
