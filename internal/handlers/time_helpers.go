package handlers

import (
	"time"

	"github.com/stylehub/barber-api/internal/timezone"
)

// All request dates and times are interpreted in the shop's timezone,
// never the server's.

func shopLocation(tz string) *time.Location {
	return timezone.Location(tz)
}

func parseDate(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, shopLocation(tz))
}

func parseDateTime(tz, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		shopLocation(tz),
	)
}
