package crm

import (
	"context"

	"github.com/stylehub/barber-api/internal/models"
)

type Repository interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
	GetLead(ctx context.Context, id uint) (*models.Lead, error)
	UpdateLead(ctx context.Context, lead *models.Lead) error
	ListLeads(ctx context.Context) ([]models.Lead, error)

	CreateOpportunity(ctx context.Context, opp *models.Opportunity) error
	GetOpportunity(ctx context.Context, id uint) (*models.Opportunity, error)
	UpdateOpportunity(ctx context.Context, opp *models.Opportunity) error
	ListOpportunities(ctx context.Context) ([]models.Opportunity, error)

	GetServiceType(ctx context.Context, id uint) (*models.ServiceType, error)

	CreateUser(ctx context.Context, user *models.User) error
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
}
