// Package timezone resolves the shop's IANA timezone. Appointment
// parsing and day windows happen in shop local time; storage is UTC.
package timezone

import "time"

// Fallback when SHOP_TIMEZONE is unset or unknown.
const fallback = "America/Mexico_City"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(fallback)
	return loc
}

// DayBounds returns the half-open [start, end) window covering the
// local day that contains t, in t's own location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
