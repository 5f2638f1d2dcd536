// Package shared holds identity and calendar helpers used by every domain package
package shared

import (
	"time"

	"github.com/google/uuid"
)

// NewID generates an opaque unique identifier for locally created records.
// Uniqueness matters, creation-order sortability does not.
func NewID() string {
	return uuid.NewString()
}

// AddDays shifts a date by n calendar days, rolling over month and year
// boundaries via the standard library's day-of-month arithmetic.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
