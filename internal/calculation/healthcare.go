package calculation

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/econloss/loss-calculator/internal/domain"
)

// HealthcareSeries values one healthcare cost item over the boundary it names.
// Costs recurring every N years are only emitted on every Nth year of the series, but
// growth still compounds over all elapsed years.
func (ce *CalculationEngine) HealthcareSeries(dates domain.VitalDates, item domain.HealthcareItem) (domain.HealthcareSeries, error) {
	start, end, err := healthcareRange(dates, item)
	if err != nil {
		return domain.HealthcareSeries{}, err
	}

	params := item.Parameters
	series := domain.HealthcareSeries{Name: item.Name, Boundary: item.Boundary}
	if end.Before(start) {
		ce.Logger.Infof("healthcare %q: %s ends %s before it starts %s, no cost", item.Name, item.Boundary, end, start)
		series.SeriesResult = Valuate(nil, domain.ValuationParams{DiscountRate: params.ActiveDiscountRate()})
		return series, nil
	}

	buckets, err := Partition(start, end, dates.Birth)
	if err != nil {
		return domain.HealthcareSeries{}, fmt.Errorf("healthcare %q: %w", item.Name, err)
	}
	buckets = ApplyPortionOverrides(buckets, item.PortionOverrides)

	series.SeriesResult = Valuate(buckets, domain.ValuationParams{
		BaseAmount:       params.BaseAmount,
		GrowthRate:       params.GrowthRate,
		AdjustmentFactor: ResolveAdjustmentFactor(params),
		DiscountRate:     params.ActiveDiscountRate(),
		FrequencyYears:   params.FrequencyYears,
	})

	ce.Logger.Debugf("healthcare %q %s..%s: %d rows, base %s, growth %s, every %s years, total %s",
		item.Name, start, end, len(series.Rows), params.BaseAmount.StringFixed(2),
		params.GrowthRate.String(), params.FrequencyYears.String(), series.TotalFutureValue.StringFixed(2))
	return series, nil
}

// healthcareRange maps a boundary name onto the pair of vital dates it denotes.
func healthcareRange(dates domain.VitalDates, item domain.HealthcareItem) (civil.Date, civil.Date, error) {
	label := fmt.Sprintf("healthcare item %q", item.Name)
	switch item.Boundary {
	case domain.BoundaryReportToRetirement:
		return dates.Report, dates.Retirement, nil
	case domain.BoundaryInjuryToDeath:
		if !dates.HasLifeHorizon {
			return civil.Date{}, civil.Date{}, &domain.MissingParameterError{Context: label + " (injury_to_death)", Field: "life_expectancy"}
		}
		return dates.Injury, dates.Death, nil
	case domain.BoundaryReportToSeparation:
		if !dates.HasSeparation {
			return civil.Date{}, civil.Date{}, &domain.MissingParameterError{Context: label + " (report_to_separation)", Field: "years_to_final_separation"}
		}
		return dates.Report, dates.Separation, nil
	case "":
		return civil.Date{}, civil.Date{}, &domain.MissingParameterError{Context: label, Field: "boundary"}
	}
	return civil.Date{}, civil.Date{}, fmt.Errorf("%s: unknown boundary %q", label, item.Boundary)
}
