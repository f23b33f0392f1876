package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/stylehub/barber-api/internal/domain/crm"
	"github.com/stylehub/barber-api/internal/models"
)

type CRMGormRepository struct {
	db *gorm.DB
}

func NewCRMGormRepository(db *gorm.DB) *CRMGormRepository {
	return &CRMGormRepository{db: db}
}

func (r *CRMGormRepository) CreateLead(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *CRMGormRepository) GetLead(ctx context.Context, id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *CRMGormRepository) UpdateLead(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *CRMGormRepository) ListLeads(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *CRMGormRepository) CreateOpportunity(ctx context.Context, opp *models.Opportunity) error {
	return r.db.WithContext(ctx).Create(opp).Error
}

func (r *CRMGormRepository) GetOpportunity(ctx context.Context, id uint) (*models.Opportunity, error) {
	var opp models.Opportunity
	if err := r.db.WithContext(ctx).First(&opp, id).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *CRMGormRepository) UpdateOpportunity(ctx context.Context, opp *models.Opportunity) error {
	return r.db.WithContext(ctx).Save(opp).Error
}

func (r *CRMGormRepository) ListOpportunities(ctx context.Context) ([]models.Opportunity, error) {
	var opps []models.Opportunity
	if err := r.db.WithContext(ctx).
		Preload("Lead").
		Preload("ServiceType").
		Order("updated_at DESC").
		Find(&opps).Error; err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *CRMGormRepository) GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error) {
	var svc models.ServiceType
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *CRMGormRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *CRMGormRepository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*CRMGormRepository)(nil)
