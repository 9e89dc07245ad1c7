// Package money форматирует денежные суммы для текстов уведомлений и отчетов.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySign = "₦"

var printer = message.NewPrinter(language.English)

// Naira форматирует сумму с разделителями разрядов: 1500 -> "₦1,500", 1500.5 -> "₦1,500.50".
func Naira(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	if amount.Equal(amount.Truncate(0)) {
		return sign + currencySign + printer.Sprintf("%d", amount.IntPart())
	}
	return sign + currencySign + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64()) //nolint:mnd
}

// CeilToHundred округляет сумму вверх до ближайшей сотни.
func CeilToHundred(amount decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100) //nolint:mnd
	return amount.Div(hundred).Ceil().Mul(hundred)
}
