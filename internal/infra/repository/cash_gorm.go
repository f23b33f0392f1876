package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/stylehub/barber-api/internal/domain/cash"
	"github.com/stylehub/barber-api/internal/models"
)

type CashGormRepository struct {
	db *gorm.DB
}

func NewCashGormRepository(db *gorm.DB) *CashGormRepository {
	return &CashGormRepository{db: db}
}

func (r *CashGormRepository) GetLastCut(ctx context.Context) (*models.CashCut, error) {
	var cut models.CashCut
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		First(&cut).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cut, nil
}

func (r *CashGormRepository) ListSalesSince(
	ctx context.Context,
	since time.Time,
) ([]models.Sale, error) {

	var sales []models.Sale
	if err := r.db.WithContext(ctx).
		Where("date > ?", since).
		Order("date DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *CashGormRepository) ListWithdrawalsSince(
	ctx context.Context,
	since time.Time,
) ([]models.CashWithdrawal, error) {

	var withdrawals []models.CashWithdrawal
	if err := r.db.WithContext(ctx).
		Where("timestamp > ?", since).
		Order("timestamp DESC").
		Find(&withdrawals).Error; err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r *CashGormRepository) CreateWithdrawal(
	ctx context.Context,
	w *models.CashWithdrawal,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *CashGormRepository) CreateCut(
	ctx context.Context,
	cut *models.CashCut,
) error {
	return r.db.WithContext(ctx).Create(cut).Error
}

func (r *CashGormRepository) ListCuts(ctx context.Context) ([]models.CashCut, error) {
	var cuts []models.CashCut
	if err := r.db.WithContext(ctx).
		Preload("PerformedBy").
		Order("timestamp DESC").
		Find(&cuts).Error; err != nil {
		return nil, err
	}
	return cuts, nil
}

// Compile-time check
var _ domain.Repository = (*CashGormRepository)(nil)
