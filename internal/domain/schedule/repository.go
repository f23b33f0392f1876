package schedule

import (
	"context"
	"time"

	"github.com/stylehub/barber-api/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServiceType(
		ctx context.Context,
		id uint,
	) (*models.ServiceType, error)

	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment runs the conflict check and the insert in one
	// transaction; overlapping concurrent writes surface as CONFLICT.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// MoveAppointment persists a new interval with the same atomic
	// conflict check, excluding the appointment's own prior interval.
	MoveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
		excludeAppointmentID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / listings --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// ListAppointmentsByUser serves a registered client's own history,
	// newest first.
	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// -------- CRM linkage --------
	ListGuestAppointmentsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Appointment, error)
}
