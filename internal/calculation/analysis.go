package calculation

import (
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// generateLossSummary rolls the series totals up into the headline figures.
// Discounted series contribute their present value; the others their nominal total.
// The pension value is reported on its own and is not added to the total loss.
func (ce *CalculationEngine) generateLossSummary(analysis *domain.Analysis, result *domain.AnalysisResult) domain.LossSummary {
	healthcare := decimal.Zero
	for _, hs := range result.Healthcare {
		healthcare = healthcare.Add(hs.Value())
	}

	fringe := result.PreInjury.TotalFringeBenefits.Add(result.PostInjury.TotalFringeBenefits)
	pre := result.PreInjury.Value()
	post := result.PostInjury.Value()

	pension := decimal.Zero
	if result.Pension != nil {
		pension = result.Pension.Value()
	}

	params := analysis.PostInjury
	estimate := EstimateWageLoss(params.BaseAmount, params.ResidualAmount, params.GrowthRate, analysis.Evaluee.WorklifeExpectancy)

	return domain.LossSummary{
		PreInjuryLoss:      pre,
		PostInjuryLoss:     post,
		HealthcareCost:     healthcare,
		FringeBenefitsLoss: fringe,
		TotalEconomicLoss:  pre.Add(post).Add(healthcare).Add(fringe),
		PensionValue:       pension,
		WageLossEstimate:   estimate,
		PostInjuryYears:    len(result.PostInjury.Rows),
	}
}
