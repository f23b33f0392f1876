package schedule

import "github.com/stylehub/barber-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusBooked    Status = "BOOKED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Blocking reports whether an appointment in this status occupies its
// interval for conflict purposes. Only cancellation frees the slot.
func Blocking(s Status) bool {
	return s != StatusCancelled
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Transition guards
// ===============================

func CanConfirm(current Status) error {
	if current != StatusBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete allows BOOKED as well as CONFIRMED: walk-ins paid at the
// till are often never confirmed explicitly. COMPLETED is handled by
// the caller as an idempotent no-op.
func CanComplete(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanReschedule(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// InitialStatus depends on the booking channel: staff-created entries
// are confirmed on the spot, self-service bookings start as BOOKED.
func InitialStatus(source string) Status {
	if source == SourceWalkIn {
		return StatusConfirmed
	}
	return StatusBooked
}

const (
	SourceWeb    = "WEB"
	SourceWalkIn = "WALK_IN"
)
