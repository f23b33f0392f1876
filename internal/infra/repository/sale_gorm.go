package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/stylehub/barber-api/internal/domain/pos"
	"github.com/stylehub/barber-api/internal/models"
)

type SaleGormRepository struct {
	db *gorm.DB
}

func NewSaleGormRepository(db *gorm.DB) *SaleGormRepository {
	return &SaleGormRepository{db: db}
}

func (r *SaleGormRepository) CreateSale(
	ctx context.Context,
	sale *models.Sale,
) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *SaleGormRepository) GetSaleByIdempotencyKey(
	ctx context.Context,
	key string,
) (*models.Sale, error) {

	var sale models.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("idempotency_key = ?", key).
		First(&sale).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *SaleGormRepository) ListSalesBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Sale, error) {

	var sales []models.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Barber").
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}

	return sales, nil
}

// Compile-time check
var _ domain.SaleRepository = (*SaleGormRepository)(nil)
