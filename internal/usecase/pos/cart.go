package pos

import (
	"context"

	domain "github.com/stylehub/barber-api/internal/domain/pos"
	schedule "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type AddItemInput struct {
	SessionID string
	Type      domain.ItemType
	RefID     uint

	// Set when the line pays for an existing appointment; the price
	// comes from the appointment's service type.
	AppointmentID *uint
}

// ======================================================
// USE CASE
// ======================================================

// CartService mediates every cart mutation: it resolves prices from
// the catalogs, applies the change and persists the recomputed cart
// back to the session store.
type CartService struct {
	carts        domain.CartStore
	catalog      domain.CatalogRepository
	appointments schedule.Repository
}

func NewCartService(
	carts domain.CartStore,
	catalog domain.CatalogRepository,
	appointments schedule.Repository,
) *CartService {
	return &CartService{
		carts:        carts,
		catalog:      catalog,
		appointments: appointments,
	}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = domain.NewCart()
	}
	cart.Recompute()
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, in AddItemInput) (*domain.Cart, error) {
	cart, err := s.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	item, err := s.resolveItem(ctx, in)
	if err != nil {
		return nil, err
	}

	cart.AddItem(item)

	if err := s.carts.Save(ctx, in.SessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemType domain.ItemType, itemID uint) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveItem(itemID, itemType); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) SetItemBarber(ctx context.Context, sessionID string, itemType domain.ItemType, itemID, barberID uint) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := cart.SetItemBarber(itemID, itemType, barberID); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}

func (s *CartService) resolveItem(ctx context.Context, in AddItemInput) (domain.CartItem, error) {
	item := domain.CartItem{
		ID:       in.RefID,
		Type:     in.Type,
		Quantity: 1,
	}

	switch in.Type {
	case domain.ItemService:
		svc, err := s.catalog.GetServiceType(ctx, in.RefID)
		if err != nil {
			return item, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		item.Name = svc.Name
		item.Price = svc.Price

		if in.AppointmentID != nil {
			ap, err := s.appointments.GetAppointment(ctx, *in.AppointmentID)
			if err != nil {
				return item, httperr.ErrBusiness(httperr.CodeNotFound)
			}
			item.AppointmentID = &ap.ID
			barberID := ap.BarberID
			item.BarberID = &barberID
		}

	case domain.ItemProduct:
		p, err := s.catalog.GetProduct(ctx, in.RefID)
		if err != nil {
			return item, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		item.Name = p.Name
		item.Price = p.Price

	case domain.ItemPromotion:
		promo, err := s.catalog.GetPromotion(ctx, in.RefID)
		if err != nil {
			return item, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		item.Name = promo.Name
		item.Price = promo.Price
		item.DiscountPercentage = promo.DiscountPercentage
		item.IsDynamic = promo.IsDynamic()

	default:
		return item, httperr.ErrBusiness(httperr.CodeValidation)
	}

	return item, nil
}
