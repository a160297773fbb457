package output

import (
	"strconv"

	"cloud.google.com/go/civil"
	money "github.com/econloss/loss-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return money.ToPercent(rate).StringFixed(2) + "%"
}

// FormatOptionalCurrency renders a nil amount as a dash.
func FormatOptionalCurrency(amount *decimal.Decimal) string {
	if amount == nil {
		return "-"
	}
	return FormatCurrency(*amount)
}

// FormatDate renders a date, or a dash for the zero date.
func FormatDate(d civil.Date) string {
	if d == (civil.Date{}) {
		return "-"
	}
	return d.String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func optionalFixed(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.StringFixed(2)
}
