package calculation

import (
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustedEarningsFactor chains the worklife, unemployment, tax, fringe and personal
// consumption adjustments. Personal consumption only applies when the inputs enable it.
func AdjustedEarningsFactor(in domain.AEFInputs) domain.AEFResult {
	worklife := in.Base.Mul(in.WorklifeAdjustment)
	unemployment := worklife.Mul(one.Sub(in.UnemploymentFactor))
	tax := unemployment.Mul(one.Sub(in.IncomeTaxRate))
	fringe := tax.Mul(one.Add(in.FringeBenefits))

	consumption := decimal.Zero
	if in.ApplyPersonalConsumption {
		consumption = in.PersonalConsumption
	}

	return domain.AEFResult{
		Inputs:               in,
		WorklifeAdjusted:     worklife,
		UnemploymentAdjusted: unemployment,
		TaxAdjusted:          tax,
		FringeAdjusted:       fringe,
		Factor:               fringe.Mul(one.Sub(consumption)),
	}
}

// ResolveAdjustmentFactor returns the factor computed from the series' AEF inputs when
// present, otherwise the literal adjustment factor.
func ResolveAdjustmentFactor(params domain.SeriesParameters) decimal.Decimal {
	if params.AEF != nil {
		return AdjustedEarningsFactor(*params.AEF).Factor
	}
	return params.AdjustmentFactor
}
