package config

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// InputFile is the top-level document. It holds either one analysis inline or a list under "analyses".
type InputFile struct {
	AnalysisFile `yaml:",inline"`
	Analyses     []AnalysisFile `yaml:"analyses,omitempty"`
}

// AnalysisFile is the on-disk form of one analysis.
type AnalysisFile struct {
	Name       string           `yaml:"name"`
	Evaluee    *EvalueeFile     `yaml:"evaluee"`
	PreInjury  SeriesFile       `yaml:"pre_injury"`
	PostInjury SeriesFile       `yaml:"post_injury"`
	Healthcare []HealthcareFile `yaml:"healthcare,omitempty"`
	Pension    *PensionFile     `yaml:"pension,omitempty"`
}

// EvalueeFile holds the vital data. Dates are written YYYY-MM-DD.
type EvalueeFile struct {
	DateOfBirth            civil.Date      `yaml:"date_of_birth"`
	DateOfInjury           civil.Date      `yaml:"date_of_injury"`
	DateOfReport           civil.Date      `yaml:"date_of_report"`
	WorklifeExpectancy     decimal.Decimal `yaml:"worklife_expectancy"`
	YearsToFinalSeparation decimal.Decimal `yaml:"years_to_final_separation"`
	LifeExpectancy         decimal.Decimal `yaml:"life_expectancy"`
}

// SeriesFile holds the parameters of one series. Bare rates are fractions unless
// rate_units is "percent"; a '%' suffix always marks a percentage.
type SeriesFile struct {
	RateUnits        string          `yaml:"rate_units"`
	BaseAmount       decimal.Decimal `yaml:"base_amount"`
	ResidualAmount   decimal.Decimal `yaml:"residual_amount"`
	GrowthRate       RateValue       `yaml:"growth_rate"`
	AdjustmentFactor *RateValue      `yaml:"adjustment_factor"`
	AEF              *AEFFile        `yaml:"aef"`
	DiscountRate     *RateValue      `yaml:"discount_rate"`
	ApplyDiscounting *bool           `yaml:"apply_discounting"`
	BenefitsRate     RateValue       `yaml:"benefits_rate"`
	FrequencyYears   decimal.Decimal `yaml:"frequency_years"`
}

// AEFFile lists adjusted earnings factor components. Omitted components take the customary defaults.
type AEFFile struct {
	RateUnits                string     `yaml:"rate_units"`
	Base                     *RateValue `yaml:"base"`
	WorklifeAdjustment       *RateValue `yaml:"worklife_adjustment"`
	UnemploymentFactor       *RateValue `yaml:"unemployment_factor"`
	IncomeTaxRate            *RateValue `yaml:"income_tax_rate"`
	FringeBenefits           *RateValue `yaml:"fringe_benefits"`
	PersonalConsumption      *RateValue `yaml:"personal_consumption"`
	ApplyPersonalConsumption *bool      `yaml:"apply_personal_consumption"`
}

// HealthcareFile is one healthcare cost item.
type HealthcareFile struct {
	Name             string                  `yaml:"name"`
	Boundary         string                  `yaml:"boundary"`
	Active           *bool                   `yaml:"active"`
	PortionOverrides map[int]decimal.Decimal `yaml:"portion_overrides"`
	SeriesFile       `yaml:",inline"`
}

// PensionFile selects a pension type and its parameters.
type PensionFile struct {
	Type               string           `yaml:"type"`
	RateUnits          string           `yaml:"rate_units"`
	FinalAverageSalary *decimal.Decimal `yaml:"final_average_salary"`
	YearsOfService     *decimal.Decimal `yaml:"years_of_service"`
	BenefitMultiplier  *RateValue       `yaml:"benefit_multiplier"`
	AnnualContribution *decimal.Decimal `yaml:"annual_contribution"`
	ExpectedReturnRate *RateValue       `yaml:"expected_return_rate"`
	ContributionYears  *int             `yaml:"contribution_years"`
}

func sortedKeys(rs rateSet) []string {
	keys := make([]string, 0, len(rs))
	for k := range rs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
