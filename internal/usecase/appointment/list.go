package appointment

import (
	"context"
	"time"

	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/models"
	"github.com/stylehub/barber-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Appointment, error) {

	start, end := timezone.DayBounds(date)

	return uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
}

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month time.Month,
	loc *time.Location,
) ([]models.Appointment, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListAppointmentsForPeriod(ctx, barberID, start, end)
}

// ListMyAppointments serves a registered client's own bookings.
type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsByUser(ctx, userID)
}
