package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

func appointmentIn(status schedule.Status) *models.Appointment {
	return &models.Appointment{
		ID:        1,
		BarberID:  1,
		GuestName: "Luis",
		StartTime: dayAt(10, 0),
		EndTime:   dayAt(11, 0),
		Status:    string(status),
	}
}

func TestLifecycleTransitions(t *testing.T) {
	t.Parallel()

	now := dayAt(12, 0)

	t.Run("confirm from booked", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusBooked)
		require.NoError(t, schedule.Confirm(ap))
		assert.Equal(t, string(schedule.StatusConfirmed), ap.Status)
	})

	t.Run("confirm from confirmed is rejected", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusConfirmed)
		err := schedule.Confirm(ap)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})

	t.Run("cancel stamps the timestamp", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusConfirmed)
		require.NoError(t, schedule.Cancel(ap, now))
		assert.Equal(t, string(schedule.StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
		assert.Equal(t, now, *ap.CancelledAt)
	})

	t.Run("cancel from terminal states is rejected", func(t *testing.T) {
		for _, s := range []schedule.Status{schedule.StatusCompleted, schedule.StatusCancelled} {
			ap := appointmentIn(s)
			err := schedule.Cancel(ap, now)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
		}
	})

	t.Run("complete from booked and confirmed", func(t *testing.T) {
		for _, s := range []schedule.Status{schedule.StatusBooked, schedule.StatusConfirmed} {
			ap := appointmentIn(s)
			require.NoError(t, schedule.Complete(ap, now))
			assert.Equal(t, string(schedule.StatusCompleted), ap.Status)
			require.NotNil(t, ap.CompletedAt)
		}
	})

	t.Run("complete is idempotent", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusCompleted)
		require.NoError(t, schedule.Complete(ap, now))
		assert.Equal(t, string(schedule.StatusCompleted), ap.Status)
		// No new timestamp on the repeat.
		assert.Nil(t, ap.CompletedAt)
	})

	t.Run("complete from cancelled is rejected", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusCancelled)
		err := schedule.Complete(ap, now)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})
}

func TestReschedule(t *testing.T) {
	t.Parallel()

	t.Run("derives the end from the duration", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusBooked)
		newStart := dayAt(15, 0)

		require.NoError(t, schedule.Reschedule(ap, newStart, nil, 45*time.Minute))
		assert.Equal(t, newStart, ap.StartTime)
		assert.Equal(t, newStart.Add(45*time.Minute), ap.EndTime)
	})

	t.Run("explicit end wins", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusConfirmed)
		newStart := dayAt(15, 0)
		newEnd := dayAt(16, 30)

		require.NoError(t, schedule.Reschedule(ap, newStart, &newEnd, time.Hour))
		assert.Equal(t, newEnd, ap.EndTime)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusBooked)
		newStart := dayAt(15, 0)
		badEnd := dayAt(14, 0)

		err := schedule.Reschedule(ap, newStart, &badEnd, time.Hour)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})

	t.Run("terminal appointments cannot move", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusCompleted)
		err := schedule.Reschedule(ap, dayAt(15, 0), nil, time.Hour)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})
}

func TestLinkClient(t *testing.T) {
	t.Parallel()

	t.Run("links a registered user to a guest booking", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusCompleted)
		start, end := ap.StartTime, ap.EndTime

		require.NoError(t, schedule.LinkClient(ap, 7))
		require.NotNil(t, ap.UserID)
		assert.Equal(t, uint(7), *ap.UserID)

		// Identity only: guest fields and the interval stay put.
		assert.Equal(t, "Luis", ap.GuestName)
		assert.Equal(t, start, ap.StartTime)
		assert.Equal(t, end, ap.EndTime)
	})

	t.Run("already linked appointments are rejected", func(t *testing.T) {
		ap := appointmentIn(schedule.StatusBooked)
		uid := uint(3)
		ap.UserID = &uid

		err := schedule.LinkClient(ap, 7)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	})
}

func TestClientValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		client schedule.Client
		valid  bool
	}{
		{"registered user", schedule.RegisteredClient(5), true},
		{"full guest", schedule.GuestClient("Ana", "ana@example.com", "555"), true},
		{"guest without phone", schedule.GuestClient("Ana", "ana@example.com", ""), true},
		{"guest without email", schedule.GuestClient("Ana", "", "555"), false},
		{"guest without name", schedule.GuestClient("", "ana@example.com", ""), false},
		{"neither identity", schedule.Client{}, false},
		{"both identities", func() schedule.Client {
			c := schedule.GuestClient("Ana", "ana@example.com", "")
			uid := uint(5)
			c.UserID = &uid
			return c
		}(), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.client.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, schedule.StatusConfirmed, schedule.InitialStatus(schedule.SourceWalkIn))
	assert.Equal(t, schedule.StatusBooked, schedule.InitialStatus(schedule.SourceWeb))
	assert.Equal(t, schedule.StatusBooked, schedule.InitialStatus(""))
}
