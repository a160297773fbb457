package calculation

import (
	"fmt"

	"github.com/econloss/loss-calculator/internal/domain"
)

// PreInjurySeries values earnings from the date of injury to the date of report.
// These are past losses: no discounting is applied even when a rate is configured.
func (ce *CalculationEngine) PreInjurySeries(dates domain.VitalDates, params domain.SeriesParameters) (domain.SeriesResult, error) {
	buckets, err := Partition(dates.Injury, dates.Report, dates.Birth)
	if err != nil {
		return domain.SeriesResult{}, fmt.Errorf("pre-injury series: %w", err)
	}
	if params.ActiveDiscountRate() != nil {
		ce.Logger.Warnf("pre-injury series: discount rate %s ignored, past earnings are stated at nominal value", params.DiscountRate.String())
	}

	factor := ResolveAdjustmentFactor(params)
	result := Valuate(buckets, domain.ValuationParams{
		BaseAmount:       params.BaseAmount,
		GrowthRate:       params.GrowthRate,
		AdjustmentFactor: factor,
		BenefitsRate:     params.BenefitsRate,
	})

	ce.Logger.Debugf("pre-injury series %s..%s: %d rows, base %s, growth %s, factor %s, total %s",
		dates.Injury, dates.Report, len(result.Rows), params.BaseAmount.StringFixed(2),
		params.GrowthRate.String(), factor.String(), result.TotalFutureValue.StringFixed(2))
	return result, nil
}

// PostInjurySeries values the lost earning capacity from the date of report to the
// retirement date. The yearly base is the pre-injury wage less the residual post-injury
// earning capacity. A retirement date before the report date yields an empty series.
func (ce *CalculationEngine) PostInjurySeries(dates domain.VitalDates, params domain.SeriesParameters) (domain.SeriesResult, error) {
	discount := params.ActiveDiscountRate()
	if dates.Retirement.Before(dates.Report) {
		ce.Logger.Infof("post-injury series: retirement %s precedes report %s, no future loss", dates.Retirement, dates.Report)
		return Valuate(nil, domain.ValuationParams{DiscountRate: discount}), nil
	}

	buckets, err := Partition(dates.Report, dates.Retirement, dates.Birth)
	if err != nil {
		return domain.SeriesResult{}, fmt.Errorf("post-injury series: %w", err)
	}

	lossBase := params.BaseAmount.Sub(params.ResidualAmount)
	if lossBase.IsNegative() {
		ce.Logger.Warnf("post-injury series: residual earnings %s exceed base %s, loss is negative",
			params.ResidualAmount.StringFixed(2), params.BaseAmount.StringFixed(2))
	}

	factor := ResolveAdjustmentFactor(params)
	result := Valuate(buckets, domain.ValuationParams{
		BaseAmount:       lossBase,
		GrowthRate:       params.GrowthRate,
		AdjustmentFactor: factor,
		DiscountRate:     discount,
		BenefitsRate:     params.BenefitsRate,
	})

	ce.Logger.Debugf("post-injury series %s..%s: %d rows, loss base %s, growth %s, factor %s, total %s, discounted %t",
		dates.Report, dates.Retirement, len(result.Rows), lossBase.StringFixed(2),
		params.GrowthRate.String(), factor.String(), result.TotalFutureValue.StringFixed(2), result.Discounted())
	return result, nil
}
