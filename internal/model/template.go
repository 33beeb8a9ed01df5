package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTemplate is a recurring-payment definition. Once per month, on or
// after DueDay, the recurrence engine turns it into an expense transaction.
type RecurringTemplate struct {
	CreatedAt time.Time
	Name      string
	Category  string
	Amount    decimal.Decimal
	ID        int64
	DueDay    int // 1-31, clamped to the actual month length at evaluation
}

// DueDateIn returns the template's effective due date for the given month,
// clamping DueDay to the month's last day (due day 31 in April fires on the 30th).
func (t *RecurringTemplate) DueDateIn(year int, month time.Month) time.Time {
	day := t.DueDay
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
