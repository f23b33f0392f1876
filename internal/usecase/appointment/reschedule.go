package appointment

import (
	"context"
	"time"

	"github.com/stylehub/barber-api/internal/audit"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint

	Start time.Time
	// End set only for explicit resizes; otherwise re-derived from the
	// service duration.
	End *time.Time

	ActorID *uint
	// ActorRole gates the move: admins reschedule freely, a barber may
	// only resize their own appointments. Empty skips the gate for
	// trusted internal callers.
	ActorRole string
}

// RescheduleAppointment serves edits, drags and resizes alike: all of
// them funnel through the same interval move and conflict check.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// authorize applies the role gate: ADMIN and ADMIN_BARBER move any
// appointment; a BARBER may only resize their own, keeping the start
// and supplying an explicit end. Everyone else is refused.
func (uc *RescheduleAppointment) authorize(
	ctx context.Context,
	ap *models.Appointment,
	in RescheduleAppointmentInput,
) error {

	switch in.ActorRole {
	case "", models.RoleAdmin, models.RoleAdminBarber:
		return nil

	case models.RoleBarber:
		if in.ActorID == nil || in.End == nil || !in.Start.Equal(ap.StartTime) {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}

		barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
		if err != nil || barber.UserID == nil || *barber.UserID != *in.ActorID {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}
		return nil

	default:
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := uc.authorize(ctx, ap, in); err != nil {
		return nil, err
	}

	duration := domain.DefaultDuration
	if ap.ServiceTypeID != nil {
		if svc, err := uc.repo.GetServiceType(ctx, *ap.ServiceTypeID); err == nil && svc.DurationMin > 0 {
			duration = time.Duration(svc.DurationMin) * time.Minute
		}
	}

	if err := domain.Reschedule(ap, in.Start, in.End, duration); err != nil {
		return nil, err
	}

	wh, err := uc.repo.GetWorkingHours(ctx, ap.BarberID, int(ap.StartTime.Weekday()))
	if err != nil || !domain.WithinWorkingHours(wh, ap.StartTime, ap.EndTime) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// The move commits only after the store re-runs the conflict check
	// excluding this appointment's prior interval; the caller applies
	// its calendar change on acceptance, so there is nothing to roll
	// back on rejection.
	if err := uc.repo.MoveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
