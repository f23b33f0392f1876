package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylehub/barber-api/internal/domain/schedule"
	"github.com/stylehub/barber-api/internal/models"
)

func fullDay() *models.WorkingHours {
	return &models.WorkingHours{
		BarberID:  1,
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "18:00",
		Active:    true,
	}
}

func dayAt(hour, min int) time.Time {
	return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
}

func booking(start, end time.Time, status schedule.Status) models.Appointment {
	return models.Appointment{
		BarberID:  1,
		StartTime: start,
		EndTime:   end,
		Status:    string(status),
	}
}

func labels(slots []schedule.TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label()
	}
	return out
}

func TestComputeAvailableSlots(t *testing.T) {
	t.Parallel()

	date := dayAt(0, 0)
	// Earlier than any slot so the past filter stays out of the way.
	now := date.Add(-24 * time.Hour)

	t.Run("empty day yields full grid", func(t *testing.T) {
		slots := schedule.ComputeAvailableSlots(fullDay(), date, nil, time.Hour, now)

		require.Len(t, slots, 9)
		assert.Equal(t, "09:00", slots[0].Label())
		assert.Equal(t, "17:00", slots[8].Label())
	})

	t.Run("partial booking blocks its whole slot", func(t *testing.T) {
		existing := []models.Appointment{
			booking(dayAt(10, 0), dayAt(10, 30), schedule.StatusBooked),
		}

		slots := schedule.ComputeAvailableSlots(fullDay(), date, existing, time.Hour, now)

		assert.NotContains(t, labels(slots), "10:00")
		assert.Contains(t, labels(slots), "09:00")
		assert.Contains(t, labels(slots), "11:00")
		assert.Len(t, slots, 8)
	})

	t.Run("cancelled appointment frees the slot", func(t *testing.T) {
		existing := []models.Appointment{
			booking(dayAt(10, 0), dayAt(11, 0), schedule.StatusCancelled),
		}

		slots := schedule.ComputeAvailableSlots(fullDay(), date, existing, time.Hour, now)

		assert.Contains(t, labels(slots), "10:00")
		assert.Len(t, slots, 9)
	})

	t.Run("back to back appointment does not block neighbours", func(t *testing.T) {
		existing := []models.Appointment{
			booking(dayAt(10, 0), dayAt(11, 0), schedule.StatusConfirmed),
		}

		slots := schedule.ComputeAvailableSlots(fullDay(), date, existing, time.Hour, now)

		assert.Contains(t, labels(slots), "09:00")
		assert.Contains(t, labels(slots), "11:00")
		assert.NotContains(t, labels(slots), "10:00")
	})

	t.Run("lunch break is skipped", func(t *testing.T) {
		wh := fullDay()
		wh.LunchStart = "13:00"
		wh.LunchEnd = "14:00"

		slots := schedule.ComputeAvailableSlots(wh, date, nil, time.Hour, now)

		assert.NotContains(t, labels(slots), "13:00")
		assert.Contains(t, labels(slots), "12:00")
		assert.Contains(t, labels(slots), "14:00")
	})

	t.Run("past slots are excluded", func(t *testing.T) {
		midday := dayAt(12, 30)

		slots := schedule.ComputeAvailableSlots(fullDay(), date, nil, time.Hour, midday)

		require.NotEmpty(t, slots)
		assert.Equal(t, "13:00", slots[0].Label())
	})

	t.Run("slot ending past closing time is excluded", func(t *testing.T) {
		slots := schedule.ComputeAvailableSlots(fullDay(), date, nil, 2*time.Hour, now)

		// 09:00 through 15:00 stepping by two hours; 17:00 would end
		// at 19:00, past closing.
		require.NotEmpty(t, slots)
		last := slots[len(slots)-1]
		assert.False(t, last.End.After(dayAt(18, 0)))
	})

	t.Run("duration shorter than the window steps by itself", func(t *testing.T) {
		slots := schedule.ComputeAvailableSlots(fullDay(), date, nil, 30*time.Minute, now)

		require.Len(t, slots, 18)
		assert.Equal(t, "09:30", slots[1].Label())
	})

	t.Run("inactive or missing working hours yield nothing", func(t *testing.T) {
		wh := fullDay()
		wh.Active = false

		assert.Empty(t, schedule.ComputeAvailableSlots(wh, date, nil, time.Hour, now))
		assert.Empty(t, schedule.ComputeAvailableSlots(nil, date, nil, time.Hour, now))
	})
}

// Every offered slot must itself pass the conflict check; the slot
// grid and the validator can never disagree.
func TestSlotsAgreeWithConflictCheck(t *testing.T) {
	t.Parallel()

	date := dayAt(0, 0)
	now := date.Add(-24 * time.Hour)

	existing := []models.Appointment{
		booking(dayAt(9, 15), dayAt(9, 45), schedule.StatusBooked),
		booking(dayAt(11, 0), dayAt(12, 0), schedule.StatusConfirmed),
		booking(dayAt(12, 0), dayAt(13, 0), schedule.StatusCancelled),
		booking(dayAt(16, 30), dayAt(17, 30), schedule.StatusBooked),
	}

	for _, dur := range []time.Duration{30 * time.Minute, time.Hour, 90 * time.Minute} {
		slots := schedule.ComputeAvailableSlots(fullDay(), date, existing, dur, now)
		for _, s := range slots {
			conflict := schedule.FindConflict(existing, s.Start, s.End, 0)
			assert.Nilf(t, conflict, "slot %s with duration %s overlaps appointment", s.Label(), dur)
		}
	}
}
