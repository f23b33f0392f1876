package pos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stylehub/barber-api/internal/audit"
	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/pos"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
	ucappointment "github.com/stylehub/barber-api/internal/usecase/appointment"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CheckoutInput struct {
	SessionID     string
	PaymentMethod string

	// Physical cash handed over; only meaningful for CASH.
	AmountReceived *decimal.Decimal

	ClientID  *uint
	GuestName string
	Notes     string

	// Caller-supplied so a retried submit cannot record twice.
	IdempotencyKey string

	ActorID *uint
}

type CheckoutResult struct {
	Sale   *models.Sale    `json:"sale"`
	Change decimal.Decimal `json:"change"`
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	carts    domain.CartStore
	sales    domain.SaleRepository
	complete *ucappointment.CompleteAppointment
	audit    *audit.Dispatcher
	clock    clock.Clock
}

func NewCheckout(
	carts domain.CartStore,
	sales domain.SaleRepository,
	complete *ucappointment.CompleteAppointment,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *Checkout {
	return &Checkout{
		carts:    carts,
		sales:    sales,
		complete: complete,
		audit:    audit,
		clock:    clk,
	}
}

func (uc *Checkout) Execute(
	ctx context.Context,
	in CheckoutInput,
) (*CheckoutResult, error) {

	switch in.PaymentMethod {
	case models.PaymentCash, models.PaymentCard, models.PaymentTransfer:
	default:
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if in.IdempotencyKey != "" {
		if existing, err := uc.sales.GetSaleByIdempotencyKey(ctx, in.IdempotencyKey); err == nil && existing != nil {
			return &CheckoutResult{Sale: existing, Change: decimal.Zero}, nil
		}
	}

	cart, err := uc.carts.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	total := cart.Recompute()

	change := decimal.Zero
	if in.PaymentMethod == models.PaymentCash {
		// Reported, not fatal: the cashier corrects the amount and
		// retries.
		if in.AmountReceived == nil || in.AmountReceived.LessThan(total) {
			return nil, httperr.ErrBusiness(httperr.CodeInsufficientCash)
		}
		change = in.AmountReceived.Sub(total)
	}

	sale := &models.Sale{
		Date:           uc.clock.Now(),
		TotalAmount:    total,
		Status:         models.SaleCompleted,
		PaymentMethod:  in.PaymentMethod,
		ClientID:       in.ClientID,
		GuestName:      in.GuestName,
		Notes:          in.Notes,
		CreatedByID:    in.ActorID,
		IdempotencyKey: in.IdempotencyKey,
	}

	for _, it := range cart.Items {
		item := models.SaleItem{
			ItemName:      it.Name,
			ItemType:      string(it.Type),
			Price:         it.Price,
			Quantity:      it.Quantity,
			Subtotal:      it.Subtotal,
			AppointmentID: it.AppointmentID,
			BarberID:      it.BarberID,
		}
		switch it.Type {
		case domain.ItemService:
			id := it.ID
			item.ServiceTypeID = &id
		case domain.ItemProduct:
			id := it.ID
			item.ProductID = &id
		case domain.ItemPromotion:
			id := it.ID
			item.PromotionID = &id
		}
		sale.Items = append(sale.Items, item)
	}

	if err := uc.sales.CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	// Appointments paid through this sale are marked completed. The
	// transition is idempotent, so replaying a line is harmless.
	for _, it := range cart.Items {
		if it.AppointmentID == nil {
			continue
		}
		if _, err := uc.complete.Execute(ctx, *it.AppointmentID, in.ActorID); err != nil {
			if !httperr.IsBusiness(err, httperr.CodeNotFound) {
				return nil, err
			}
		}
	}

	if err := uc.carts.Delete(ctx, in.SessionID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "sale_recorded",
		Entity:   "sale",
		EntityID: &sale.ID,
		Metadata: map[string]any{
			"total":  total,
			"method": in.PaymentMethod,
		},
	})

	return &CheckoutResult{Sale: sale, Change: change}, nil
}
