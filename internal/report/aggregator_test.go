package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgie-cli/budgie/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	start := date(2024, time.March, 1)
	end := date(2024, time.March, 31)
	transactions := []model.Transaction{
		{Kind: model.KindIncome, Amount: decimal.NewFromInt(2000), Category: "Salary", Date: date(2024, time.March, 1)},
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(800), Category: "Housing", Date: date(2024, time.March, 5)},
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(120), Category: "Food", Date: date(2024, time.March, 10)},
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(80), Category: "Food", Date: date(2024, time.March, 20)},
		// Outside the window: must be ignored.
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(999), Category: "Food", Date: date(2024, time.February, 28)},
	}

	summary := Summarize(transactions, start, end)

	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(2000)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Net().Equal(decimal.NewFromInt(1000)))

	require.Len(t, summary.ByCategory, 3)
	// Ordered by descending absolute net: Salary 2000, Housing 800, Food 200.
	assert.Equal(t, "Salary", summary.ByCategory[0].Category)
	assert.Equal(t, "Housing", summary.ByCategory[1].Category)
	assert.Equal(t, "Food", summary.ByCategory[2].Category)

	food := summary.ByCategory[2]
	assert.True(t, food.Income.IsZero())
	assert.True(t, food.Expense.Equal(decimal.NewFromInt(200)))
	assert.True(t, food.Net().Equal(decimal.NewFromInt(-200)))
}

func TestSummarizeMixedCategory(t *testing.T) {
	start := date(2024, time.March, 1)
	end := date(2024, time.March, 31)
	transactions := []model.Transaction{
		{Kind: model.KindIncome, Amount: decimal.NewFromInt(50), Category: "Hobby", Date: date(2024, time.March, 2)},
		{Kind: model.KindExpense, Amount: decimal.NewFromInt(30), Category: "Hobby", Date: date(2024, time.March, 3)},
	}

	summary := Summarize(transactions, start, end)

	require.Len(t, summary.ByCategory, 1)
	hobby := summary.ByCategory[0]
	assert.True(t, hobby.Income.Equal(decimal.NewFromInt(50)))
	assert.True(t, hobby.Expense.Equal(decimal.NewFromInt(30)))
	assert.True(t, hobby.Net().Equal(decimal.NewFromInt(20)))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, date(2024, time.March, 1), date(2024, time.March, 31))
	assert.Empty(t, summary.ByCategory)
	assert.True(t, summary.Net().IsZero())
}

func TestWindowHelpers(t *testing.T) {
	// Wednesday 20 March 2024.
	day := date(2024, time.March, 20)
	assert.Equal(t, date(2024, time.March, 18), WeekStart(day))
	assert.Equal(t, date(2024, time.March, 1), MonthStart(day))

	// A Monday is its own week start.
	assert.Equal(t, date(2024, time.March, 18), WeekStart(date(2024, time.March, 18)))
}
