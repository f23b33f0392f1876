package cash

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stylehub/barber-api/internal/audit"
	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/cash"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

// windowFloor bounds the accumulation window before the first cut.
var windowFloor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Register is the single till aggregate. Writes are serialized so the
// balance a cut reconciles against cannot shift mid-operation.
type Register struct {
	mu    sync.Mutex
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (r *Register) GetState(ctx context.Context) (domain.State, error) {
	return r.computeState(ctx)
}

func (r *Register) Withdraw(
	ctx context.Context,
	amount decimal.Decimal,
	description string,
	actorID uint,
) (*models.CashWithdrawal, error) {

	if !amount.IsPositive() {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	w := &models.CashWithdrawal{
		Amount:        amount,
		Description:   description,
		PerformedByID: actorID,
		Timestamp:     r.clock.Now(),
	}

	if err := r.repo.CreateWithdrawal(ctx, w); err != nil {
		return nil, err
	}

	r.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "cash_withdrawal",
		Entity:   "cash_withdrawal",
		EntityID: &w.ID,
		Metadata: map[string]any{"amount": amount},
	})

	return w, nil
}

// PerformCut reconciles the drawer and opens a fresh accumulation
// window. Cutting an empty window is legal: it records a zero-balance
// checkpoint.
func (r *Register) PerformCut(
	ctx context.Context,
	counted *decimal.Decimal,
	notes string,
	actorID uint,
) (*models.CashCut, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	st, err := r.computeState(ctx)
	if err != nil {
		return nil, err
	}

	cut := domain.Reconcile(st.CashBalance, counted, notes, r.clock.Now())
	cut.PerformedByID = actorID

	if err := r.repo.CreateCut(ctx, &cut); err != nil {
		return nil, err
	}

	r.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "cash_cut",
		Entity:   "cash_cut",
		EntityID: &cut.ID,
		Metadata: map[string]any{
			"expected":    cut.ExpectedAmount,
			"discrepancy": cut.Discrepancy,
		},
	})

	return &cut, nil
}

// HistoryEntry is one line of the current-register view: sales and
// withdrawals interleaved, newest first. Withdrawals show negative.
type HistoryEntry struct {
	Type        string          `json:"type"`
	ID          uint            `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Method      string          `json:"payment_method,omitempty"`
}

func (r *Register) History(ctx context.Context) ([]HistoryEntry, error) {
	since, err := r.windowStart(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := r.repo.ListSalesSince(ctx, since)
	if err != nil {
		return nil, err
	}
	withdrawals, err := r.repo.ListWithdrawalsSince(ctx, since)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(sales)+len(withdrawals))
	for _, s := range sales {
		entries = append(entries, HistoryEntry{
			Type:        "SALE",
			ID:          s.ID,
			Amount:      s.TotalAmount,
			Date:        s.Date,
			Description: s.Notes,
			Method:      s.PaymentMethod,
		})
	}
	for _, w := range withdrawals {
		entries = append(entries, HistoryEntry{
			Type:        "WITHDRAWAL",
			ID:          w.ID,
			Amount:      w.Amount.Neg(),
			Date:        w.Timestamp,
			Description: w.Description,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

func (r *Register) ListCuts(ctx context.Context) ([]models.CashCut, error) {
	return r.repo.ListCuts(ctx)
}

func (r *Register) windowStart(ctx context.Context) (time.Time, error) {
	lastCut, err := r.repo.GetLastCut(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if lastCut == nil {
		return windowFloor, nil
	}
	return lastCut.Timestamp, nil
}

func (r *Register) computeState(ctx context.Context) (domain.State, error) {
	lastCut, err := r.repo.GetLastCut(ctx)
	if err != nil {
		return domain.State{}, err
	}

	since := windowFloor
	if lastCut != nil {
		since = lastCut.Timestamp
	}

	sales, err := r.repo.ListSalesSince(ctx, since)
	if err != nil {
		return domain.State{}, err
	}
	withdrawals, err := r.repo.ListWithdrawalsSince(ctx, since)
	if err != nil {
		return domain.State{}, err
	}

	return domain.ComputeState(sales, withdrawals, lastCut), nil
}
