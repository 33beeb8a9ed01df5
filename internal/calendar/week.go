// Package calendar builds the 7-day due-date view shown on the dashboard.
package calendar

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgie-cli/budgie/internal/model"
)

// MajorExpenseThreshold marks expenses worth calling out on the calendar.
var MajorExpenseThreshold = decimal.NewFromInt(100)

// DayEntry is one day of the week view.
type DayEntry struct {
	Date          time.Time
	DueTemplates  []string // names of templates due on this day
	MajorExpenses []string // descriptions of large expenses dated this day
	IsToday       bool
}

// WeekView is the Monday-to-Sunday week containing the reference date.
type WeekView struct {
	Start time.Time
	Days  [7]DayEntry
}

// WeekStart returns the Monday that begins the week containing the given day.
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildWeekView computes the week view for the week containing today.
//
// Each day is annotated with the templates whose effective due date falls on
// it and with that day's major expenses. Due days are clamped against the
// month the day belongs to, so a week spanning a month boundary evaluates
// January days against January's length and February days against February's.
//
// Pure function of its inputs; no side effects.
func BuildWeekView(today time.Time, templates []model.RecurringTemplate, transactions []model.Transaction) WeekView {
	view := WeekView{Start: WeekStart(today)}

	for i := 0; i < 7; i++ {
		day := view.Start.AddDate(0, 0, i)
		entry := DayEntry{
			Date:    day,
			IsToday: sameDay(day, today),
		}

		for _, tpl := range templates {
			due := tpl.DueDateIn(day.Year(), day.Month())
			if due.Day() == day.Day() {
				entry.DueTemplates = append(entry.DueTemplates, tpl.Name)
			}
		}

		for _, txn := range transactions {
			if txn.Kind != model.KindExpense || !txn.SameDay(day) {
				continue
			}
			if txn.Amount.GreaterThan(MajorExpenseThreshold) {
				desc := txn.Description
				if desc == "" {
					desc = txn.Category
				}
				entry.MajorExpenses = append(entry.MajorExpenses, desc)
			}
		}

		view.Days[i] = entry
	}

	return view
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
