package domain

import "github.com/shopspring/decimal"

// PensionType tags which pension projection is requested.
type PensionType string

const (
	DefinedBenefit      PensionType = "defined_benefit"
	DefinedContribution PensionType = "defined_contribution"
)

// PensionParams carries the fields of both pension types. Nil means absent.
type PensionParams struct {
	FinalAverageSalary *decimal.Decimal `json:"final_average_salary,omitempty"`
	YearsOfService     *decimal.Decimal `json:"years_of_service,omitempty"`
	BenefitMultiplier  *decimal.Decimal `json:"benefit_multiplier,omitempty"`
	AnnualContribution *decimal.Decimal `json:"annual_contribution,omitempty"`
	ExpectedReturnRate *decimal.Decimal `json:"expected_return_rate,omitempty"`
	ContributionYears  *int             `json:"contribution_years,omitempty"`
}

// PensionSpec pairs a pension type with its parameters.
type PensionSpec struct {
	Type   PensionType   `json:"type"`
	Params PensionParams `json:"params"`
}

// DefinedBenefitResult is a flat annual annuity.
type DefinedBenefitResult struct {
	FinalAverageSalary decimal.Decimal `json:"final_average_salary"`
	YearsOfService     decimal.Decimal `json:"years_of_service"`
	BenefitMultiplier  decimal.Decimal `json:"benefit_multiplier"`
	AnnualBenefit      decimal.Decimal `json:"annual_benefit"`
}

// DefinedContributionResult is the accumulated value of level annual contributions.
type DefinedContributionResult struct {
	AnnualContribution decimal.Decimal   `json:"annual_contribution"`
	ExpectedReturnRate decimal.Decimal   `json:"expected_return_rate"`
	ContributionYears  int               `json:"contribution_years"`
	TotalContributions decimal.Decimal   `json:"total_contributions"`
	InvestmentGrowth   decimal.Decimal   `json:"investment_growth"`
	AccumulatedValue   decimal.Decimal   `json:"accumulated_value"`
	YearEndBalances    []decimal.Decimal `json:"year_end_balances"`
}

// PensionProjection holds exactly one of the two results, selected by Type.
type PensionProjection struct {
	Type                PensionType                `json:"pension_type"`
	DefinedBenefit      *DefinedBenefitResult      `json:"defined_benefit,omitempty"`
	DefinedContribution *DefinedContributionResult `json:"defined_contribution,omitempty"`
}

// Value returns the headline figure: the annual benefit or the accumulated value.
func (p PensionProjection) Value() decimal.Decimal {
	switch {
	case p.DefinedBenefit != nil:
		return p.DefinedBenefit.AnnualBenefit
	case p.DefinedContribution != nil:
		return p.DefinedContribution.AccumulatedValue
	}
	return decimal.Zero
}
