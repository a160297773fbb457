package calculation

import "github.com/shopspring/decimal"

// Grow returns base × (1+rate)^offset. A zero rate or zero offset returns base unchanged.
// Negative rates are not rejected.
func Grow(base, rate decimal.Decimal, offset int) decimal.Decimal {
	if rate.IsZero() || offset == 0 {
		return base
	}
	return base.Mul(growthFactor(rate, offset))
}

// growthFactor returns (1+rate)^n.
func growthFactor(rate decimal.Decimal, n int) decimal.Decimal {
	return one.Add(rate).Pow(decimal.NewFromInt(int64(n)))
}

// Discount returns amount / (1+rate)^offset.
func Discount(amount, rate decimal.Decimal, offset int) decimal.Decimal {
	if rate.IsZero() || offset == 0 {
		return amount
	}
	return amount.Div(growthFactor(rate, offset))
}
