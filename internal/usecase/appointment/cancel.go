package appointment

import (
	"context"

	"github.com/stylehub/barber-api/internal/audit"
	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// Cancellation keeps the record for the client dossier; only the
	// status changes, which frees the interval immediately.
	if err := domain.Cancel(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ExecuteForOwner cancels only when the appointment belongs to the
// given registered client.
func (uc *CancelAppointment) ExecuteForOwner(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if ap.UserID == nil || *ap.UserID != userID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	actor := userID
	return uc.Execute(ctx, appointmentID, &actor)
}
