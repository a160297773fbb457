package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *Analysis {
	discount := decimal.RequireFromString("0.04")
	return &Analysis{
		Name:    "Sample",
		Evaluee: sampleProfile(),
		PreInjury: SeriesParameters{
			BaseAmount:       decimal.NewFromInt(50000),
			GrowthRate:       decimal.RequireFromString("0.03"),
			AdjustmentFactor: decimal.NewFromInt(1),
		},
		PostInjury: SeriesParameters{
			BaseAmount:       decimal.NewFromInt(50000),
			ResidualAmount:   decimal.NewFromInt(30000),
			GrowthRate:       decimal.RequireFromString("0.03"),
			AdjustmentFactor: decimal.NewFromInt(1),
			DiscountRate:     &discount,
			ApplyDiscounting: true,
		},
	}
}

func TestAnalysis_FingerprintIsDeterministic(t *testing.T) {
	a, err := sampleAnalysis().Fingerprint()
	require.NoError(t, err)
	b, err := sampleAnalysis().Fingerprint()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 5, int(a.Version()), "name-based SHA-1 UUID")
}

func TestAnalysis_FingerprintChangesWithInput(t *testing.T) {
	base, err := sampleAnalysis().Fingerprint()
	require.NoError(t, err)

	changed := sampleAnalysis()
	changed.PostInjury.ResidualAmount = decimal.NewFromInt(25000)
	other, err := changed.Fingerprint()
	require.NoError(t, err)

	assert.NotEqual(t, base, other)
}

func TestSeriesParameters_ActiveDiscountRate(t *testing.T) {
	rate := decimal.RequireFromString("0.05")

	p := SeriesParameters{DiscountRate: &rate}
	assert.Nil(t, p.ActiveDiscountRate(), "rate without the flag stays disabled")

	p.ApplyDiscounting = true
	got := p.ActiveDiscountRate()
	require.NotNil(t, got)
	assert.True(t, got.Equal(rate))

	p.DiscountRate = nil
	assert.Nil(t, p.ActiveDiscountRate())
}

func TestSeriesResult_Value(t *testing.T) {
	s := SeriesResult{TotalFutureValue: decimal.NewFromInt(100)}
	assert.False(t, s.Discounted())
	assert.True(t, s.Value().Equal(decimal.NewFromInt(100)))

	pv := decimal.NewFromInt(90)
	s.TotalPresentValue = &pv
	assert.True(t, s.Discounted())
	assert.True(t, s.Value().Equal(pv))
}

func TestPensionProjection_Value(t *testing.T) {
	assert.True(t, PensionProjection{}.Value().IsZero())

	db := PensionProjection{Type: DefinedBenefit, DefinedBenefit: &DefinedBenefitResult{AnnualBenefit: decimal.NewFromInt(12000)}}
	assert.True(t, db.Value().Equal(decimal.NewFromInt(12000)))

	dc := PensionProjection{Type: DefinedContribution, DefinedContribution: &DefinedContributionResult{AccumulatedValue: decimal.NewFromInt(62889)}}
	assert.True(t, dc.Value().Equal(decimal.NewFromInt(62889)))
}
