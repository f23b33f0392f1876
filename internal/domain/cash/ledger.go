package cash

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stylehub/barber-api/internal/models"
)

// State is the derived register aggregate since the last cut. Only
// CASH sales feed the physical drawer balance; every payment method
// counts toward revenue.
type State struct {
	CashBalance      decimal.Decimal `json:"cash_balance"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	LastCutDate      *time.Time      `json:"last_cut_date"`
}

// ComputeState folds the transactions recorded since the last cut.
func ComputeState(
	sales []models.Sale,
	withdrawals []models.CashWithdrawal,
	lastCut *models.CashCut,
) State {

	cashSales := decimal.Zero
	revenue := decimal.Zero
	for _, s := range sales {
		if s.Status != models.SaleCompleted {
			continue
		}
		revenue = revenue.Add(s.TotalAmount)
		if s.PaymentMethod == models.PaymentCash {
			cashSales = cashSales.Add(s.TotalAmount)
		}
	}

	withdrawn := decimal.Zero
	for _, w := range withdrawals {
		withdrawn = withdrawn.Add(w.Amount)
	}

	st := State{
		CashBalance:      cashSales.Sub(withdrawn),
		TotalRevenue:     revenue,
		TotalWithdrawals: withdrawn,
	}
	if lastCut != nil {
		t := lastCut.Timestamp
		st.LastCutDate = &t
	}
	return st
}

// Reconcile builds the cut record: discrepancy = counted - expected.
// A cut over an empty window is legal and reconciles to zero.
func Reconcile(expected decimal.Decimal, counted *decimal.Decimal, notes string, now time.Time) models.CashCut {
	cut := models.CashCut{
		Timestamp:      now,
		ExpectedAmount: expected,
		Notes:          notes,
	}
	if counted != nil {
		c := *counted
		cut.CountedAmount = &c
		cut.Discrepancy = c.Sub(expected)
	}
	return cut
}
