package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business error codes surfaced by the domain engine.
const (
	CodeValidation       = "validation_error"
	CodeConflict         = "time_conflict"
	CodeNotFound         = "not_found"
	CodeInvalidState     = "invalid_state_transition"
	CodeInsufficientCash = "insufficient_funds"
	CodeForbidden        = "forbidden"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsExclusionConflict reports whether err is a Postgres exclusion
// constraint violation (23P01). The appointments table carries an
// exclusion constraint on (barber_id, tsrange) so two concurrent
// bookings for the same interval cannot both commit.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01"
	}
	return false
}
