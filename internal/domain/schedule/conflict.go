package schedule

import (
	"time"

	"github.com/stylehub/barber-api/internal/models"
)

// Overlaps is the half-open interval test: [aStart, aEnd) intersects
// [bStart, bEnd). Back-to-back appointments do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflict returns the first non-cancelled appointment whose
// interval intersects [start, end), skipping excludeID so an update
// never collides with its own prior interval. Advisory only: the
// authoritative check runs inside the store's write transaction.
func FindConflict(existing []models.Appointment, start, end time.Time, excludeID uint) *models.Appointment {
	for i := range existing {
		ap := &existing[i]
		if ap.ID == excludeID {
			continue
		}
		if !Blocking(Status(ap.Status)) {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return ap
		}
	}
	return nil
}
