package cash

import (
	"context"
	"time"

	"github.com/stylehub/barber-api/internal/models"
)

type Repository interface {
	// GetLastCut returns nil with no error when the register has never
	// been cut.
	GetLastCut(ctx context.Context) (*models.CashCut, error)

	ListSalesSince(
		ctx context.Context,
		since time.Time,
	) ([]models.Sale, error)

	ListWithdrawalsSince(
		ctx context.Context,
		since time.Time,
	) ([]models.CashWithdrawal, error)

	CreateWithdrawal(ctx context.Context, w *models.CashWithdrawal) error
	CreateCut(ctx context.Context, cut *models.CashCut) error
	ListCuts(ctx context.Context) ([]models.CashCut, error)
}
