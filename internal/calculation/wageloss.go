package calculation

import "github.com/shopspring/decimal"

// FutureValueOfGrowingSeries returns Σ payment×(1+rate)^k for k = 0..n-1 in closed form.
func FutureValueOfGrowingSeries(payment, rate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	if rate.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(n)))
	}
	return payment.Mul(growthFactor(rate, n).Sub(one)).Div(rate)
}

// EstimateWageLoss is the closed-form estimate of a level annual wage difference over the
// worklife: annual × (1 − (1+rate)^−worklife) / rate. Fractional worklife is kept in the
// exponent so the result tends to annual × worklife as rate approaches zero.
func EstimateWageLoss(preInjuryWage, postInjuryWage, rate, worklifeYears decimal.Decimal) decimal.Decimal {
	annual := preInjuryWage.Sub(postInjuryWage)
	if !worklifeYears.IsPositive() {
		return decimal.Zero
	}
	if rate.IsZero() {
		return annual.Mul(worklifeYears)
	}
	base := one.Add(rate)
	if !base.IsPositive() {
		return decimal.Zero
	}
	return annual.Mul(one.Sub(base.Pow(worklifeYears.Neg()))).Div(rate)
}
