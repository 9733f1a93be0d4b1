package domain

import "errors"

// Sentinel errors for the attendance core. Callers classify failures with
// errors.Is; store and spreadsheet failures are wrapped with context and
// handled at the phase boundary of the enclosing recurring task.
var (
	// ErrNotFound is returned when a referenced person, date or record does
	// not exist. User-facing commands turn it into a short message.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus is returned when a status name is not part of the
	// attendance status enumeration.
	ErrInvalidStatus = errors.New("invalid attendance status")

	// ErrInvalidInput is returned for malformed dates, times or identifiers,
	// before any write happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSchemaMismatch is returned when an expected column cannot be located
	// in an external sheet. It aborts only the affected sync phase.
	ErrSchemaMismatch = errors.New("sheet schema mismatch")
)

// IsClientError reports whether the error should be shown to the user instead
// of being logged as a system failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidInput)
}
