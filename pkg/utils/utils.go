package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartOfDay normalizes a timestamp to midnight in its own location.
// Day arithmetic must not be affected by the time of day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from 'from' to 'to'.
// Only the date components matter, so a payment due at any time today is
// 0 days overdue until tomorrow. The subtraction happens on UTC-rebuilt
// midnights; subtracting local midnights would miscount across DST
// transitions, where a calendar day is 23 or 25 hours long.
func DaysBetween(from, to time.Time) int {
	to = to.In(from.Location())
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	u := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(u.Sub(f).Hours() / 24)
}

// IsDateOverdue checks if a due date is in the past relative to 'now'
func IsDateOverdue(dueDate, now time.Time) bool {
	return DaysBetween(dueDate, now) > 0
}

// Round2 rounds a monetary value to 2 decimal places (nearest cent)
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
