package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction adds to or draws from the balance.
type TransactionKind string

const (
	// KindIncome represents money coming in.
	KindIncome TransactionKind = "income"
	// KindExpense represents money going out.
	KindExpense TransactionKind = "expense"
)

// UncategorizedName is the reserved category transactions fall back to.
const UncategorizedName = "Uncategorized"

// SavingsTransferCategory is the reserved category used when moving money
// into the savings goal.
const SavingsTransferCategory = "Savings Transfer"

// Transaction represents a single ledger entry. Amount is always positive;
// the direction of money flow is carried by Kind.
type Transaction struct {
	Date        time.Time
	CreatedAt   time.Time
	Kind        TransactionKind
	Category    string
	Description string
	Amount      decimal.Decimal
	ID          int64
	TemplateID  *int64 // set when generated by the recurrence engine
}

// Signed returns the amount with its sign applied: positive for income,
// negative for expense.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// SameDay reports whether the transaction is dated on the given calendar day.
func (t *Transaction) SameDay(day time.Time) bool {
	y1, m1, d1 := t.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
