package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stylehub/barber-api/internal/audit"
	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	return audit.NewDispatcher(audit.New(db))
}

func seedRepo() *fakeScheduleRepo {
	repo := newFakeScheduleRepo()
	repo.addBarber(models.Barber{ID: 1, Name: "Marco", Active: true})
	repo.addBarber(models.Barber{ID: 2, Name: "Saúl", Active: false})
	repo.addServiceType(models.ServiceType{ID: 1, Name: "Corte", DurationMin: 30})
	repo.addUser(models.User{ID: 10, Name: "Ana", Email: "ana@example.com", Role: models.RoleClient})
	repo.setWorkingHours(1, models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "18:00",
		Active:    true,
	})
	return repo
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
}

func TestCreateAppointment(t *testing.T) {
	now := at(8, 0)

	newUC := func(repo *fakeScheduleRepo) *CreateAppointment {
		return NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
	}

	svcID := uint(1)

	t.Run("guest booking lands as BOOKED", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID:      1,
			Client:        domain.GuestClient("Luis", "luis@example.com", "555"),
			ServiceTypeID: &svcID,
			Start:         at(10, 0),
			Source:        domain.SourceWeb,
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusBooked), ap.Status)
		assert.Equal(t, at(10, 30), ap.EndTime)
		assert.True(t, ap.IsGuest())
		assert.NotZero(t, ap.ID)
	})

	t.Run("walk-in lands as CONFIRMED", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.RegisteredClient(10),
			Start:    at(10, 0),
			Source:   domain.SourceWalkIn,
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
		// No service type: default duration.
		assert.Equal(t, at(11, 0), ap.EndTime)
	})

	t.Run("overlapping booking is rejected", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Luis", "luis@example.com", ""),
			Start:    at(10, 0),
		})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Pedro", "pedro@example.com", ""),
			Start:    at(10, 30),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
	})

	t.Run("back to back booking is accepted", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Luis", "luis@example.com", ""),
			Start:    at(10, 0),
		})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Pedro", "pedro@example.com", ""),
			Start:    at(11, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("inactive barber refuses bookings", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 2,
			Client:   domain.GuestClient("Luis", "luis@example.com", ""),
			Start:    at(10, 0),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})

	t.Run("past start is rejected", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Luis", "luis@example.com", ""),
			Start:    at(7, 0),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})

	t.Run("outside working hours is rejected", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Luis", "luis@example.com", ""),
			Start:    at(19, 0),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})

	t.Run("identity XOR is enforced", func(t *testing.T) {
		repo := seedRepo()
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.Client{},
			Start:    at(10, 0),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})
}

func TestRescheduleAppointment(t *testing.T) {
	now := at(8, 0)

	seed := func(t *testing.T) (*fakeScheduleRepo, *models.Appointment) {
		repo := seedRepo()
		create := NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		svcID := uint(1)

		ap, err := create.Execute(context.Background(), CreateAppointmentInput{
			BarberID:      1,
			Client:        domain.GuestClient("Luis", "luis@example.com", ""),
			ServiceTypeID: &svcID,
			Start:         at(10, 0),
		})
		require.NoError(t, err)
		return repo, ap
	}

	t.Run("moves and re-derives the end", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		moved, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         at(14, 0),
		})
		require.NoError(t, err)

		assert.Equal(t, at(14, 0), moved.StartTime)
		assert.Equal(t, at(14, 30), moved.EndTime)
	})

	t.Run("move within its own slot never self-conflicts", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         at(10, 15),
		})
		assert.NoError(t, err)
	})

	t.Run("move onto another appointment is rejected", func(t *testing.T) {
		repo, ap := seed(t)
		create := NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))

		_, err := create.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Pedro", "pedro@example.com", ""),
			Start:    at(12, 0),
		})
		require.NoError(t, err)

		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))
		_, err = uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         at(12, 30),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
	})
}

func TestReschedulePrivileges(t *testing.T) {
	now := at(8, 0)
	barberUser := uint(20)

	seed := func(t *testing.T) (*fakeScheduleRepo, *models.Appointment) {
		repo := seedRepo()
		repo.addBarber(models.Barber{ID: 1, Name: "Marco", Active: true, UserID: &barberUser})

		create := NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		svcID := uint(1)

		ap, err := create.Execute(context.Background(), CreateAppointmentInput{
			BarberID:      1,
			Client:        domain.GuestClient("Luis", "luis@example.com", ""),
			ServiceTypeID: &svcID,
			Start:         at(10, 0),
		})
		require.NoError(t, err)
		return repo, ap
	}

	t.Run("admin moves freely", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         at(14, 0),
			ActorRole:     models.RoleAdmin,
		})
		assert.NoError(t, err)
	})

	t.Run("reception cannot reschedule", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         at(14, 0),
			ActorRole:     models.RoleReception,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	})

	t.Run("owning barber may resize", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		end := at(11, 0)
		moved, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           &end,
			ActorID:       &barberUser,
			ActorRole:     models.RoleBarber,
		})
		require.NoError(t, err)
		assert.Equal(t, at(11, 0), moved.EndTime)
		assert.Equal(t, ap.StartTime, moved.StartTime)
	})

	t.Run("barber cannot move the start", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		end := at(15, 0)
		_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         at(14, 0),
			End:           &end,
			ActorID:       &barberUser,
			ActorRole:     models.RoleBarber,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	})

	t.Run("another barber's login is refused", func(t *testing.T) {
		repo, ap := seed(t)
		uc := NewRescheduleAppointment(repo, newTestDispatcher(t))

		stranger := uint(99)
		end := at(11, 0)
		_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           &end,
			ActorID:       &stranger,
			ActorRole:     models.RoleBarber,
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	})
}
