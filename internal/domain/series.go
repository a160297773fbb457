package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// SeriesParameters configures one earnings or cost series. All rates are fractions.
type SeriesParameters struct {
	BaseAmount decimal.Decimal `json:"base_amount"`
	// ResidualAmount is the post-injury earning capacity subtracted from BaseAmount
	// on the post-injury path. Other paths ignore it.
	ResidualAmount   decimal.Decimal  `json:"residual_amount"`
	GrowthRate       decimal.Decimal  `json:"growth_rate"`
	AdjustmentFactor decimal.Decimal  `json:"adjustment_factor"`
	AEF              *AEFInputs       `json:"aef,omitempty"`
	DiscountRate     *decimal.Decimal `json:"discount_rate,omitempty"`
	ApplyDiscounting bool             `json:"apply_discounting"`
	BenefitsRate     decimal.Decimal  `json:"benefits_rate"`
	FrequencyYears   decimal.Decimal  `json:"frequency_years"`
}

// ActiveDiscountRate returns the discount rate when discounting is enabled, otherwise nil.
func (p SeriesParameters) ActiveDiscountRate() *decimal.Decimal {
	if !p.ApplyDiscounting || p.DiscountRate == nil {
		return nil
	}
	d := *p.DiscountRate
	return &d
}

// ValuationParams is the resolved input of the valuation engine for one series.
type ValuationParams struct {
	BaseAmount       decimal.Decimal
	GrowthRate       decimal.Decimal
	AdjustmentFactor decimal.Decimal
	// DiscountRate enables present-value columns when non-nil.
	DiscountRate   *decimal.Decimal
	BenefitsRate   decimal.Decimal
	FrequencyYears decimal.Decimal
}

// PeriodBucket is one calendar-year slice [Start, End) of a series.
type PeriodBucket struct {
	Year          int             `json:"year"`
	Start         civil.Date      `json:"start"`
	End           civil.Date      `json:"end"`
	Days          int             `json:"days"`
	PortionOfYear decimal.Decimal `json:"portion_of_year"`
	Age           decimal.Decimal `json:"age"`
}

// PortionOverrides replaces the computed portion of year for specific calendar years.
type PortionOverrides map[int]decimal.Decimal

// ValuationRow is a bucket with its derived money columns.
type ValuationRow struct {
	PeriodBucket
	YearOffset       int              `json:"year_offset"`
	WageBase         decimal.Decimal  `json:"wage_base_for_year"`
	GrossEarnings    decimal.Decimal  `json:"gross_earnings"`
	AdjustedEarnings decimal.Decimal  `json:"adjusted_earnings"`
	FringeBenefits   decimal.Decimal  `json:"fringe_benefits"`
	PresentValue     *decimal.Decimal `json:"present_value,omitempty"`
}

// SeriesResult is the ordered rows of one series and their running totals.
type SeriesResult struct {
	Rows                []ValuationRow   `json:"rows"`
	TotalFutureValue    decimal.Decimal  `json:"total_future_value"`
	TotalPresentValue   *decimal.Decimal `json:"total_present_value,omitempty"`
	TotalFringeBenefits decimal.Decimal  `json:"total_fringe_benefits"`
}

// Discounted reports whether present values were computed.
func (s SeriesResult) Discounted() bool { return s.TotalPresentValue != nil }

// Value returns the present value total when discounted, otherwise the future value total.
func (s SeriesResult) Value() decimal.Decimal {
	if s.TotalPresentValue != nil {
		return *s.TotalPresentValue
	}
	return s.TotalFutureValue
}

// HealthcareBoundary selects the vital-date pair bounding a healthcare series.
type HealthcareBoundary string

const (
	BoundaryReportToRetirement HealthcareBoundary = "report_to_retirement"
	BoundaryInjuryToDeath      HealthcareBoundary = "injury_to_death"
	BoundaryReportToSeparation HealthcareBoundary = "report_to_separation"
)

// HealthcareItem is one recurring cost category of a healthcare plan.
type HealthcareItem struct {
	Name             string             `json:"name"`
	Boundary         HealthcareBoundary `json:"boundary"`
	Parameters       SeriesParameters   `json:"parameters"`
	PortionOverrides PortionOverrides   `json:"portion_overrides,omitempty"`
	Active           bool               `json:"active"`
}

// HealthcareSeries is the valued result of one healthcare item.
type HealthcareSeries struct {
	Name     string             `json:"name"`
	Boundary HealthcareBoundary `json:"boundary"`
	SeriesResult
}
