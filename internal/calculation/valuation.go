package calculation

import (
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Valuate prices each bucket of a series. The series start year is the year of the
// first bucket; growth and discount exponents are offsets from it.
//
// Present values are only produced when params.DiscountRate is set. An empty bucket
// slice yields an empty result with zero totals.
func Valuate(buckets []domain.PeriodBucket, params domain.ValuationParams) domain.SeriesResult {
	result := domain.SeriesResult{
		Rows:                make([]domain.ValuationRow, 0, len(buckets)),
		TotalFutureValue:    decimal.Zero,
		TotalFringeBenefits: decimal.Zero,
	}
	var totalPV decimal.Decimal
	if params.DiscountRate != nil {
		result.TotalPresentValue = &totalPV
	}
	if len(buckets) == 0 {
		return result
	}

	interval, occurrences := recurrence(params.FrequencyYears)
	startYear := buckets[0].Year

	for _, b := range buckets {
		offset := b.Year - startYear
		if interval > 1 && offset%interval != 0 {
			continue
		}

		wageBase := Grow(params.BaseAmount, params.GrowthRate, offset).Mul(occurrences)
		gross := b.PortionOfYear.Mul(wageBase)
		adjusted := gross.Mul(params.AdjustmentFactor)

		row := domain.ValuationRow{
			PeriodBucket:     b,
			YearOffset:       offset,
			WageBase:         wageBase,
			GrossEarnings:    gross,
			AdjustedEarnings: adjusted,
			FringeBenefits:   gross.Mul(params.BenefitsRate),
		}
		if params.DiscountRate != nil {
			pv := Discount(adjusted, *params.DiscountRate, offset)
			row.PresentValue = &pv
			totalPV = totalPV.Add(pv)
		}

		result.TotalFutureValue = result.TotalFutureValue.Add(adjusted)
		result.TotalFringeBenefits = result.TotalFringeBenefits.Add(row.FringeBenefits)
		result.Rows = append(result.Rows, row)
	}
	return result
}

// recurrence turns a frequency in years into an emission interval and a per-year
// multiplier. frequency > 1 emits every floor(frequency) years; 0 < frequency < 1
// emits every year scaled by 1/frequency occurrences; anything else is annual.
func recurrence(frequency decimal.Decimal) (interval int, occurrences decimal.Decimal) {
	switch {
	case frequency.GreaterThan(one):
		return int(frequency.Floor().IntPart()), one
	case frequency.IsPositive() && frequency.LessThan(one):
		return 1, one.Div(frequency)
	default:
		return 1, one
	}
}
