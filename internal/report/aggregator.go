// Package report aggregates transactions into per-category summaries.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgie-cli/budgie/internal/model"
)

// CategorySummary holds the totals for a single category within a window.
type CategorySummary struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// Net returns income minus expense for the category.
func (c CategorySummary) Net() decimal.Decimal {
	return c.Income.Sub(c.Expense)
}

// Summary is the aggregate of a set of transactions over a time window.
type Summary struct {
	Start        time.Time
	End          time.Time
	ByCategory   []CategorySummary
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Net returns the overall net flow (income minus expense) for the window.
func (s Summary) Net() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// Summarize groups the transactions dated within [start, end] by category.
// Categories are ordered by descending absolute net so the biggest movers
// come first.
func Summarize(transactions []model.Transaction, start, end time.Time) Summary {
	summary := Summary{Start: start, End: end}
	byCategory := make(map[string]*CategorySummary)

	for _, txn := range transactions {
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}

		cat, ok := byCategory[txn.Category]
		if !ok {
			cat = &CategorySummary{Category: txn.Category}
			byCategory[txn.Category] = cat
		}

		switch txn.Kind {
		case model.KindIncome:
			cat.Income = cat.Income.Add(txn.Amount)
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case model.KindExpense:
			cat.Expense = cat.Expense.Add(txn.Amount)
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
	}

	for _, cat := range byCategory {
		summary.ByCategory = append(summary.ByCategory, *cat)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a := summary.ByCategory[i].Net().Abs()
		b := summary.ByCategory[j].Net().Abs()
		if a.Equal(b) {
			return summary.ByCategory[i].Category < summary.ByCategory[j].Category
		}
		return a.GreaterThan(b)
	})

	return summary
}

// WeekStart returns the Monday beginning the week that contains the day.
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of the month that contains the day.
func MonthStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}
