package appointment

import (
	"context"
	"time"

	"github.com/stylehub/barber-api/internal/audit"
	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID uint

	Client domain.Client

	ServiceTypeID *uint

	Start time.Time
	End   *time.Time

	Notes  string
	Source string

	// Staff user performing the operation, nil for self-service.
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock clock.Clock
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clk clock.Clock,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		clock: clk,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := in.Client.Validate(); err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	now := uc.clock.Now()
	if in.Start.Before(now) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	duration := domain.DefaultDuration
	if in.ServiceTypeID != nil {
		svc, err := uc.repo.GetServiceType(ctx, *in.ServiceTypeID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		if svc.DurationMin > 0 {
			duration = time.Duration(svc.DurationMin) * time.Minute
		}
	}

	end := in.Start.Add(duration)
	if in.End != nil {
		if !in.End.After(in.Start) {
			return nil, httperr.ErrBusiness(httperr.CodeValidation)
		}
		end = *in.End
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(in.Start.Weekday()))
	if err != nil || !domain.WithinWorkingHours(wh, in.Start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	ap := &models.Appointment{
		BarberID:       in.BarberID,
		ServiceTypeID:  in.ServiceTypeID,
		StartTime:      in.Start,
		EndTime:        end,
		Status:         string(domain.InitialStatus(in.Source)),
		Notes:          in.Notes,
		CreationSource: in.Source,
	}
	if err := domain.ApplyClient(ap, in.Client); err != nil {
		return nil, err
	}

	// Conflict check and insert share one store transaction.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
