package schedule

import (
	"time"

	"github.com/stylehub/barber-api/internal/httperr"
	"github.com/stylehub/barber-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete is idempotent: completing an already completed appointment
// is a no-op so POS retries cannot fail a checkout.
func Complete(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) == StatusCompleted {
		return nil
	}
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Reschedule moves the interval. End defaults to start plus the
// service duration when not explicitly provided.
func Reschedule(ap *models.Appointment, start time.Time, end *time.Time, duration time.Duration) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.StartTime = start
	if end != nil {
		if !end.After(start) {
			return httperr.ErrBusiness(httperr.CodeValidation)
		}
		ap.EndTime = *end
		return nil
	}

	if duration <= 0 {
		duration = DefaultDuration
	}
	ap.EndTime = start.Add(duration)
	return nil
}

// LinkClient attaches a registered user to a guest appointment. The
// temporal fields and the guest triple stay untouched; the linkage is
// an identity operation, not a lifecycle transition, so it is legal on
// any status.
func LinkClient(ap *models.Appointment, userID uint) error {
	if !ap.IsGuest() {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	ap.UserID = &userID
	return nil
}

// ApplyClient writes the identity sum type onto the record.
func ApplyClient(ap *models.Appointment, client Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	if client.UserID != nil {
		ap.UserID = client.UserID
		return nil
	}

	ap.GuestName = client.Guest.Name
	ap.GuestEmail = client.Guest.Email
	ap.GuestPhone = client.Guest.Phone
	return nil
}
