package pos

import (
	"context"

	"github.com/stylehub/barber-api/internal/models"
)

// CatalogRepository is the read-mostly reference data behind cart
// lines: prices are always resolved server-side.
type CatalogRepository interface {
	GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	GetPromotion(ctx context.Context, id uint) (*models.Promotion, error)

	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListPromotions(ctx context.Context) ([]models.Promotion, error)
}
