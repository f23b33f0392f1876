package appointment

import (
	"context"
	"time"

	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetAvailability(repo domain.Repository, clk clock.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clk}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if !barber.Active {
		return []domain.TimeSlot{}, nil
	}

	duration := domain.DefaultDuration
	if in.ServiceTypeID != 0 {
		svc, err := uc.repo.GetServiceType(ctx, in.ServiceTypeID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		if svc.DurationMin > 0 {
			duration = time.Duration(svc.DurationMin) * time.Minute
		}
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.BarberID, int(in.Date.Weekday()))
	if err != nil {
		return []domain.TimeSlot{}, nil
	}

	dayStart, dayEnd := timezone.DayBounds(in.Date)

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := domain.ComputeAvailableSlots(wh, in.Date, existing, duration, uc.clock.Now())
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	return slots, nil
}
