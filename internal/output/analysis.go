package output

import (
	"sort"

	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ComponentShare is one line of the loss breakdown.
type ComponentShare struct {
	Component string
	Amount    decimal.Decimal
	Share     decimal.Decimal // fraction of the total economic loss
}

// LossBreakdown splits the total economic loss into its components, largest first.
// Components with a zero amount are omitted; shares are zero when the total is zero.
func LossBreakdown(summary domain.LossSummary) []ComponentShare {
	components := []ComponentShare{
		{Component: "Pre-injury earnings", Amount: summary.PreInjuryLoss},
		{Component: "Post-injury earnings", Amount: summary.PostInjuryLoss},
		{Component: "Healthcare", Amount: summary.HealthcareCost},
		{Component: "Fringe benefits", Amount: summary.FringeBenefitsLoss},
	}

	total := summary.TotalEconomicLoss
	out := components[:0]
	for _, c := range components {
		if c.Amount.IsZero() {
			continue
		}
		if !total.IsZero() {
			c.Share = c.Amount.Div(total)
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	return out
}
