package trm

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeStringTooLong        = "22001"
	codeNumericOutOfRange    = "22003"
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsUniqueViolation reports whether err comes from a violated unique constraint.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsStringTooLong reports whether a value did not fit its VARCHAR column.
func IsStringTooLong(err error) bool {
	return hasCode(err, codeStringTooLong)
}

// IsNumericOutOfRange reports whether a number overflowed its column type.
func IsNumericOutOfRange(err error) bool {
	return hasCode(err, codeNumericOutOfRange)
}

// IsRetryable reports whether the whole transaction may be replayed safely.
func IsRetryable(err error) bool {
	return hasCode(err, codeSerializationFailure) || hasCode(err, codeDeadlockDetected)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
