package calculation

import (
	"fmt"

	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectPension computes the projection for the requested pension type. Required
// fields of the selected type must be present; nothing is computed otherwise.
func ProjectPension(pensionType domain.PensionType, params domain.PensionParams) (domain.PensionProjection, error) {
	switch pensionType {
	case domain.DefinedBenefit:
		db, err := CalculateDefinedBenefit(params)
		if err != nil {
			return domain.PensionProjection{}, err
		}
		return domain.PensionProjection{Type: pensionType, DefinedBenefit: db}, nil
	case domain.DefinedContribution:
		dc, err := CalculateDefinedContribution(params)
		if err != nil {
			return domain.PensionProjection{}, err
		}
		return domain.PensionProjection{Type: pensionType, DefinedContribution: dc}, nil
	case "":
		return domain.PensionProjection{}, &domain.MissingParameterError{Context: "pension", Field: "pension_type"}
	}
	return domain.PensionProjection{}, fmt.Errorf("unsupported pension type %q", pensionType)
}

// CalculateDefinedBenefit computes the flat annual benefit
// final average salary × years of service × multiplier.
func CalculateDefinedBenefit(params domain.PensionParams) (*domain.DefinedBenefitResult, error) {
	required := []struct {
		field string
		value *decimal.Decimal
	}{
		{"final_average_salary", params.FinalAverageSalary},
		{"years_of_service", params.YearsOfService},
		{"benefit_multiplier", params.BenefitMultiplier},
	}
	for _, r := range required {
		if r.value == nil {
			return nil, &domain.MissingParameterError{Context: string(domain.DefinedBenefit), Field: r.field}
		}
	}

	fas := *params.FinalAverageSalary
	service := *params.YearsOfService
	multiplier := *params.BenefitMultiplier
	return &domain.DefinedBenefitResult{
		FinalAverageSalary: fas,
		YearsOfService:     service,
		BenefitMultiplier:  multiplier,
		AnnualBenefit:      fas.Mul(service).Mul(multiplier),
	}, nil
}

// CalculateDefinedContribution accumulates a level contribution made at the end of each
// year, each compounding at the expected return for the years that remain.
func CalculateDefinedContribution(params domain.PensionParams) (*domain.DefinedContributionResult, error) {
	if params.AnnualContribution == nil {
		return nil, &domain.MissingParameterError{Context: string(domain.DefinedContribution), Field: "annual_contribution"}
	}
	if params.ExpectedReturnRate == nil {
		return nil, &domain.MissingParameterError{Context: string(domain.DefinedContribution), Field: "expected_return_rate"}
	}
	if params.ContributionYears == nil {
		return nil, &domain.MissingParameterError{Context: string(domain.DefinedContribution), Field: "contribution_years"}
	}

	contribution := *params.AnnualContribution
	rate := *params.ExpectedReturnRate
	years := *params.ContributionYears
	if years < 0 {
		years = 0
	}

	balances := SimulateContributionGrowth(contribution, rate, years)
	accumulated := decimal.Zero
	if len(balances) > 0 {
		accumulated = balances[len(balances)-1]
	}
	total := contribution.Mul(decimal.NewFromInt(int64(years)))

	return &domain.DefinedContributionResult{
		AnnualContribution: contribution,
		ExpectedReturnRate: rate,
		ContributionYears:  years,
		TotalContributions: total,
		InvestmentGrowth:   accumulated.Sub(total),
		AccumulatedValue:   accumulated,
		YearEndBalances:    balances,
	}, nil
}

// SimulateContributionGrowth returns the balance at the end of each of the given years.
// Each year the prior balance earns the return, then the contribution is added.
func SimulateContributionGrowth(annualContribution, annualReturn decimal.Decimal, years int) []decimal.Decimal {
	balances := make([]decimal.Decimal, 0, years)
	growth := one.Add(annualReturn)
	balance := decimal.Zero
	for i := 0; i < years; i++ {
		balance = balance.Mul(growth).Add(annualContribution)
		balances = append(balances, balance)
	}
	return balances
}
