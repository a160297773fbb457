package calculation

import (
	"errors"
	"testing"

	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestProjectPension_DefinedBenefit(t *testing.T) {
	projection, err := ProjectPension(domain.DefinedBenefit, domain.PensionParams{
		FinalAverageSalary: decPtr("80000"),
		YearsOfService:     decPtr("25"),
		BenefitMultiplier:  decPtr("0.015"),
		AnnualContribution: decPtr("999"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DefinedBenefit, projection.Type)
	require.NotNil(t, projection.DefinedBenefit)
	assert.Nil(t, projection.DefinedContribution)
	assert.True(t, projection.DefinedBenefit.AnnualBenefit.Equal(decimal.NewFromInt(30000)))
	assert.True(t, projection.Value().Equal(decimal.NewFromInt(30000)))
}

func TestProjectPension_DefinedContribution(t *testing.T) {
	projection, err := ProjectPension(domain.DefinedContribution, domain.PensionParams{
		AnnualContribution: decPtr("5000"),
		ExpectedReturnRate: decPtr("0.05"),
		ContributionYears:  intPtr(10),
	})
	require.NoError(t, err)

	require.NotNil(t, projection.DefinedContribution)
	assert.Nil(t, projection.DefinedBenefit)
	dc := projection.DefinedContribution

	// Σ C × (1+r)^(N−k) for k = 1..N
	expected := decimal.Zero
	for k := 1; k <= 10; k++ {
		expected = expected.Add(Grow(d("5000"), d("0.05"), 10-k))
	}
	assert.True(t, dc.AccumulatedValue.Equal(expected), "got %s want %s", dc.AccumulatedValue, expected)
	assert.Equal(t, "62889.46", dc.AccumulatedValue.StringFixed(2))
	assert.Equal(t, FutureValueOfGrowingSeries(d("5000"), d("0.05"), 10).StringFixed(2), dc.AccumulatedValue.StringFixed(2))
	assert.True(t, dc.TotalContributions.Equal(decimal.NewFromInt(50000)))
	assert.True(t, dc.InvestmentGrowth.Equal(dc.AccumulatedValue.Sub(dc.TotalContributions)))
	require.Len(t, dc.YearEndBalances, 10)
	assert.True(t, dc.YearEndBalances[0].Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "10250.00", dc.YearEndBalances[1].StringFixed(2))
}

func TestProjectPension_DefinedContributionZeroYears(t *testing.T) {
	projection, err := ProjectPension(domain.DefinedContribution, domain.PensionParams{
		AnnualContribution: decPtr("5000"),
		ExpectedReturnRate: decPtr("0.05"),
		ContributionYears:  intPtr(0),
	})
	require.NoError(t, err)
	assert.True(t, projection.DefinedContribution.AccumulatedValue.IsZero())
	assert.Empty(t, projection.DefinedContribution.YearEndBalances)
}

func TestProjectPension_MissingParameters(t *testing.T) {
	tests := []struct {
		name        string
		pensionType domain.PensionType
		params      domain.PensionParams
		field       string
	}{
		{
			name:        "benefit without multiplier",
			pensionType: domain.DefinedBenefit,
			params:      domain.PensionParams{FinalAverageSalary: decPtr("80000"), YearsOfService: decPtr("25")},
			field:       "benefit_multiplier",
		},
		{
			name:        "benefit without salary",
			pensionType: domain.DefinedBenefit,
			params:      domain.PensionParams{YearsOfService: decPtr("25"), BenefitMultiplier: decPtr("0.01")},
			field:       "final_average_salary",
		},
		{
			name:        "contribution without return rate",
			pensionType: domain.DefinedContribution,
			params:      domain.PensionParams{AnnualContribution: decPtr("5000"), ContributionYears: intPtr(5)},
			field:       "expected_return_rate",
		},
		{
			name:        "contribution without years",
			pensionType: domain.DefinedContribution,
			params:      domain.PensionParams{AnnualContribution: decPtr("5000"), ExpectedReturnRate: decPtr("0.05")},
			field:       "contribution_years",
		},
		{
			name:   "no type",
			params: domain.PensionParams{},
			field:  "pension_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectPension(tt.pensionType, tt.params)
			require.Error(t, err)
			var missing *domain.MissingParameterError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestProjectPension_UnknownType(t *testing.T) {
	_, err := ProjectPension("cash_balance", domain.PensionParams{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrMissingParameter))
}
