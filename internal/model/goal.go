package model

import "github.com/shopspring/decimal"

// SavingsGoal is the singleton savings target. Saved only grows through an
// explicit transfer, which records a matching expense transaction so the net
// balance stays consistent.
type SavingsGoal struct {
	Target decimal.Decimal
	Saved  decimal.Decimal
}

// IsSet reports whether a goal target has been configured.
func (g *SavingsGoal) IsSet() bool {
	return g.Target.IsPositive()
}

// Progress returns the saved/target ratio clamped to [0, 1].
func (g *SavingsGoal) Progress() float64 {
	if !g.IsSet() {
		return 0
	}
	ratio, _ := g.Saved.Div(g.Target).Float64()
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
