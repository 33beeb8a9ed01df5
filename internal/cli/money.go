package cli

import (
	"github.com/shopspring/decimal"

	"github.com/budgie-cli/budgie/internal/model"
)

// CurrencySymbol prefixes every rendered amount.
const CurrencySymbol = "£"

// FormatAmount renders a positive amount with the currency symbol.
func FormatAmount(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}

// FormatSigned renders an amount colored and signed by transaction kind.
func FormatSigned(amount decimal.Decimal, kind model.TransactionKind) string {
	if kind == model.KindExpense {
		return ExpenseStyle.Render("-" + FormatAmount(amount))
	}
	return IncomeStyle.Render("+" + FormatAmount(amount))
}

// FormatNet renders a signed net amount, colored by its sign.
func FormatNet(net decimal.Decimal) string {
	if net.IsNegative() {
		return ExpenseStyle.Render(CurrencySymbol + net.StringFixed(2))
	}
	return IncomeStyle.Render(CurrencySymbol + net.StringFixed(2))
}

// ProgressBar renders a fixed-width textual progress bar for the goal panel.
func ProgressBar(ratio float64, width int) string {
	if width <= 0 {
		width = 12
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(float64(width) * ratio)
	bar := make([]byte, 0, width+2)
	bar = append(bar, '|')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '=')
		} else {
			bar = append(bar, '-')
		}
	}
	bar = append(bar, '|')

	style := InfoStyle
	switch {
	case ratio >= 1:
		style = SuccessStyle
	case ratio > 0.5:
		style = WarningStyle
	}
	return style.Render(string(bar))
}
