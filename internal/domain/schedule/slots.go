package schedule

import (
	"sort"
	"time"

	"github.com/stylehub/barber-api/internal/models"
)

// DefaultDuration applies when a service has no duration configured;
// it also derives the end time of appointments created without one.
const DefaultDuration = 60 * time.Minute

type AvailabilityInput struct {
	BarberID      uint
	ServiceTypeID uint
	Date          time.Time
}

type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Label is the hour shown in the slot picker.
func (s TimeSlot) Label() string {
	return s.Start.Format("15:04")
}

// ComputeAvailableSlots derives the bookable start times for one
// barber and day. Candidates step through the working-hours window at
// the service duration itself; a candidate is dropped when its end
// would pass closing time, when it falls inside the lunch break, when
// it is already in the past, or when it overlaps a non-cancelled
// appointment.
func ComputeAvailableSlots(
	wh *models.WorkingHours,
	date time.Time,
	existing []models.Appointment,
	duration time.Duration,
	now time.Time,
) []TimeSlot {

	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return nil
	}

	if duration <= 0 {
		duration = DefaultDuration
	}

	loc := date.Location()
	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(wh.StartTime)
	dayEnd := parseHM(wh.EndTime)

	hasLunch := wh.LunchStart != "" && wh.LunchEnd != ""
	var lunchStart, lunchEnd time.Time
	if hasLunch {
		lunchStart = parseHM(wh.LunchStart)
		lunchEnd = parseHM(wh.LunchEnd)
	}

	booked := make([]models.Appointment, 0, len(existing))
	for _, ap := range existing {
		if Blocking(Status(ap.Status)) {
			booked = append(booked, ap)
		}
	}
	sort.Slice(booked, func(i, j int) bool {
		return booked[i].StartTime.Before(booked[j].StartTime)
	})

	var slots []TimeSlot
	apIdx := 0

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(duration) {

		slotStart := cur
		slotEnd := cur.Add(duration)

		if slotStart.Before(now) {
			continue
		}

		if hasLunch && slotStart.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}

		for apIdx < len(booked) && !booked[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(booked) && booked[i].StartTime.Before(slotEnd); i++ {
			if Overlaps(slotStart, slotEnd, booked[i].StartTime, booked[i].EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{Start: slotStart, End: slotEnd})
		}
	}

	return slots
}
