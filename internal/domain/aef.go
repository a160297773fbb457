package domain

import "github.com/shopspring/decimal"

// AEFInputs are the components of an adjusted earnings factor, all as fractions.
type AEFInputs struct {
	Base                     decimal.Decimal `json:"base"`
	WorklifeAdjustment       decimal.Decimal `json:"worklife_adjustment"`
	UnemploymentFactor       decimal.Decimal `json:"unemployment_factor"`
	IncomeTaxRate            decimal.Decimal `json:"income_tax_rate"`
	FringeBenefits           decimal.Decimal `json:"fringe_benefits"`
	PersonalConsumption      decimal.Decimal `json:"personal_consumption"`
	ApplyPersonalConsumption bool            `json:"apply_personal_consumption"`
}

// DefaultAEFInputs returns the customary starting values.
func DefaultAEFInputs() AEFInputs {
	return AEFInputs{
		Base:                     decimal.NewFromInt(1),
		WorklifeAdjustment:       decimal.RequireFromString("0.857"),
		UnemploymentFactor:       decimal.RequireFromString("0.042"),
		IncomeTaxRate:            decimal.RequireFromString("0.22"),
		FringeBenefits:           decimal.RequireFromString("0.30"),
		PersonalConsumption:      decimal.RequireFromString("0.235"),
		ApplyPersonalConsumption: true,
	}
}

// AEFResult records every intermediate step of the factor.
type AEFResult struct {
	Inputs               AEFInputs       `json:"inputs"`
	WorklifeAdjusted     decimal.Decimal `json:"worklife_adjusted"`
	UnemploymentAdjusted decimal.Decimal `json:"unemployment_adjusted"`
	TaxAdjusted          decimal.Decimal `json:"tax_adjusted"`
	FringeAdjusted       decimal.Decimal `json:"fringe_adjusted"`
	Factor               decimal.Decimal `json:"adjusted_earnings_factor"`
}
