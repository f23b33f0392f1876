package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylehub/barber-api/internal/clock"
	domain "github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

func seedBooked(t *testing.T, repo *fakeScheduleRepo) *models.Appointment {
	t.Helper()

	create := NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(at(8, 0)))
	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		BarberID: 1,
		Client:   domain.GuestClient("Luis", "luis@example.com", ""),
		Start:    at(10, 0),
	})
	require.NoError(t, err)
	return ap
}

func TestConfirmAndCancel(t *testing.T) {
	now := at(9, 0)

	t.Run("confirm then cancel", func(t *testing.T) {
		repo := seedRepo()
		ap := seedBooked(t, repo)

		confirm := NewConfirmAppointment(repo, newTestDispatcher(t))
		got, err := confirm.Execute(context.Background(), ap.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)

		cancel := NewCancelAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		got, err = cancel.Execute(context.Background(), ap.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		assert.NotNil(t, got.CancelledAt)
	})

	t.Run("cancelling frees the slot for a new booking", func(t *testing.T) {
		repo := seedRepo()
		ap := seedBooked(t, repo)

		cancel := NewCancelAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		_, err := cancel.Execute(context.Background(), ap.ID, nil)
		require.NoError(t, err)

		create := NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(at(8, 0)))
		_, err = create.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.GuestClient("Pedro", "pedro@example.com", ""),
			Start:    at(10, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown appointment is not found", func(t *testing.T) {
		repo := seedRepo()
		confirm := NewConfirmAppointment(repo, newTestDispatcher(t))

		_, err := confirm.Execute(context.Background(), 99, nil)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}

func TestCompleteAppointmentIdempotency(t *testing.T) {
	now := at(11, 0)

	repo := seedRepo()
	ap := seedBooked(t, repo)

	complete := NewCompleteAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))

	first, err := complete.Execute(context.Background(), ap.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), first.Status)
	require.NotNil(t, first.CompletedAt)
	assert.Equal(t, now, *first.CompletedAt)

	// Retry: same outcome, no error, timestamp untouched.
	second, err := complete.Execute(context.Background(), ap.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), second.Status)
	require.NotNil(t, second.CompletedAt)
	assert.Equal(t, *first.CompletedAt, *second.CompletedAt)
}

func TestLinkGuestToClient(t *testing.T) {
	t.Run("links an existing user", func(t *testing.T) {
		repo := seedRepo()
		ap := seedBooked(t, repo)

		link := NewLinkGuestToClient(repo, newTestDispatcher(t))
		got, err := link.Execute(context.Background(), ap.ID, 10, nil)
		require.NoError(t, err)

		require.NotNil(t, got.UserID)
		assert.Equal(t, uint(10), *got.UserID)
		assert.Equal(t, ap.StartTime, got.StartTime)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		repo := seedRepo()
		ap := seedBooked(t, repo)

		link := NewLinkGuestToClient(repo, newTestDispatcher(t))
		_, err := link.Execute(context.Background(), ap.ID, 99, nil)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}

func TestGetAvailability(t *testing.T) {
	now := at(8, 0)

	t.Run("booked slot disappears, cancelled slot returns", func(t *testing.T) {
		repo := seedRepo()
		ap := seedBooked(t, repo)

		availability := NewGetAvailability(repo, clock.NewFixed(now))

		slots, err := availability.Execute(context.Background(), domain.AvailabilityInput{
			BarberID: 1,
			Date:     at(0, 0),
		})
		require.NoError(t, err)
		assert.NotContains(t, slotLabels(slots), "10:00")

		cancel := NewCancelAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		_, err = cancel.Execute(context.Background(), ap.ID, nil)
		require.NoError(t, err)

		slots, err = availability.Execute(context.Background(), domain.AvailabilityInput{
			BarberID: 1,
			Date:     at(0, 0),
		})
		require.NoError(t, err)
		assert.Contains(t, slotLabels(slots), "10:00")
	})

	t.Run("inactive barber yields an empty list", func(t *testing.T) {
		repo := seedRepo()
		availability := NewGetAvailability(repo, clock.NewFixed(now))

		slots, err := availability.Execute(context.Background(), domain.AvailabilityInput{
			BarberID: 2,
			Date:     at(0, 0),
		})
		require.NoError(t, err)
		assert.NotNil(t, slots)
		assert.Empty(t, slots)
	})

	t.Run("missing working hours yield an empty list", func(t *testing.T) {
		repo := seedRepo()
		repo.addBarber(models.Barber{ID: 3, Name: "Nuevo", Active: true})

		availability := NewGetAvailability(repo, clock.NewFixed(now))
		slots, err := availability.Execute(context.Background(), domain.AvailabilityInput{
			BarberID: 3,
			Date:     at(0, 0),
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestClientSelfService(t *testing.T) {
	now := at(9, 0)

	bookFor := func(t *testing.T, repo *fakeScheduleRepo, userID uint, hour int) *models.Appointment {
		t.Helper()
		create := NewCreateAppointment(repo, newTestDispatcher(t), clock.NewFixed(at(8, 0)))
		ap, err := create.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1,
			Client:   domain.RegisteredClient(userID),
			Start:    at(hour, 0),
		})
		require.NoError(t, err)
		return ap
	}

	t.Run("history lists only the caller's appointments", func(t *testing.T) {
		repo := seedRepo()
		repo.addUser(models.User{ID: 11, Name: "Rosa", Email: "rosa@example.com", Role: models.RoleClient})

		mine := bookFor(t, repo, 10, 10)
		bookFor(t, repo, 11, 12)

		list := NewListMyAppointments(repo)
		aps, err := list.Execute(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, aps, 1)
		assert.Equal(t, mine.ID, aps[0].ID)
	})

	t.Run("owner cancels their own appointment", func(t *testing.T) {
		repo := seedRepo()
		ap := bookFor(t, repo, 10, 10)

		cancel := NewCancelAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		got, err := cancel.ExecuteForOwner(context.Background(), ap.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), got.Status)
	})

	t.Run("someone else's appointment is refused", func(t *testing.T) {
		repo := seedRepo()
		repo.addUser(models.User{ID: 11, Name: "Rosa", Email: "rosa@example.com", Role: models.RoleClient})
		ap := bookFor(t, repo, 11, 10)

		cancel := NewCancelAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		_, err := cancel.ExecuteForOwner(context.Background(), ap.ID, 10)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	})

	t.Run("guest bookings stay out of reach", func(t *testing.T) {
		repo := seedRepo()
		ap := seedBooked(t, repo)

		cancel := NewCancelAppointment(repo, newTestDispatcher(t), clock.NewFixed(now))
		_, err := cancel.ExecuteForOwner(context.Background(), ap.ID, 10)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	})
}

func slotLabels(slots []domain.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label()
	}
	return out
}
