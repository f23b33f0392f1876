package pos

import (
	"context"
	"time"

	"github.com/stylehub/barber-api/internal/models"
)

// CartStore holds one cart per register session.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *models.Sale) error

	GetSaleByIdempotencyKey(
		ctx context.Context,
		key string,
	) (*models.Sale, error)

	ListSalesBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Sale, error)
}
