package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/stylehub/barber-api/internal/domain/pos"
	"github.com/stylehub/barber-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error) {
	var svc models.ServiceType
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogGormRepository) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogGormRepository) GetPromotion(ctx context.Context, id uint) (*models.Promotion, error) {
	var promo models.Promotion
	if err := r.db.WithContext(ctx).First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *CatalogGormRepository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var svcs []models.ServiceType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&svcs).Error; err != nil {
		return nil, err
	}
	return svcs, nil
}

func (r *CatalogGormRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogGormRepository) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	var promos []models.Promotion
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// Compile-time check
var _ domain.CatalogRepository = (*CatalogGormRepository)(nil)
