package calculation

import (
	"testing"

	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullYearBuckets(t *testing.T, startYear, n int) []domain.PeriodBucket {
	t.Helper()
	buckets, err := Partition(date(startYear, 1, 1), date(startYear+n, 1, 1), testBirthDate)
	require.NoError(t, err)
	require.Len(t, buckets, n)
	return buckets
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValuate_WithoutDiscountNeverPopulatesPresentValue(t *testing.T) {
	buckets, err := Partition(date(2023, 7, 1), date(2030, 3, 15), testBirthDate)
	require.NoError(t, err)

	result := Valuate(buckets, domain.ValuationParams{
		BaseAmount:       d("50000"),
		GrowthRate:       d("0.03"),
		AdjustmentFactor: d("0.8"),
	})

	require.Len(t, result.Rows, len(buckets))
	assert.Nil(t, result.TotalPresentValue)
	assert.False(t, result.Discounted())
	for _, row := range result.Rows {
		assert.Nil(t, row.PresentValue, "year %d", row.Year)
	}
}

func TestValuate_RowColumns(t *testing.T) {
	buckets, err := Partition(date(2023, 7, 1), date(2025, 7, 1), testBirthDate)
	require.NoError(t, err)

	result := Valuate(buckets, domain.ValuationParams{
		BaseAmount:       d("40000"),
		GrowthRate:       d("0.05"),
		AdjustmentFactor: d("0.75"),
		BenefitsRate:     d("0.2"),
	})
	require.Len(t, result.Rows, 3)

	total := decimal.Zero
	fringe := decimal.Zero
	for i, row := range result.Rows {
		assert.Equal(t, i, row.YearOffset)
		assert.True(t, row.WageBase.Equal(Grow(d("40000"), d("0.05"), i)))
		assert.True(t, row.GrossEarnings.Equal(row.PortionOfYear.Mul(row.WageBase)))
		assert.True(t, row.AdjustedEarnings.Equal(row.GrossEarnings.Mul(d("0.75"))))
		assert.True(t, row.FringeBenefits.Equal(row.GrossEarnings.Mul(d("0.2"))))
		total = total.Add(row.AdjustedEarnings)
		fringe = fringe.Add(row.FringeBenefits)
	}
	assert.True(t, result.TotalFutureValue.Equal(total))
	assert.True(t, result.TotalFringeBenefits.Equal(fringe))

	// 2024 is a full year at one year of growth.
	assert.Equal(t, "42000.00", result.Rows[1].GrossEarnings.StringFixed(2))
	assert.Equal(t, "31500.00", result.Rows[1].AdjustedEarnings.StringFixed(2))
}

func TestValuate_Discounting(t *testing.T) {
	rate := d("0.1")
	result := Valuate(fullYearBuckets(t, 2024, 3), domain.ValuationParams{
		BaseAmount:       d("1000"),
		GrowthRate:       decimal.Zero,
		AdjustmentFactor: decimal.NewFromInt(1),
		DiscountRate:     &rate,
	})

	require.Len(t, result.Rows, 3)
	expected := []string{"1000.00", "909.09", "826.45"}
	for i, row := range result.Rows {
		require.NotNil(t, row.PresentValue)
		assert.Equal(t, expected[i], row.PresentValue.StringFixed(2))
	}
	require.NotNil(t, result.TotalPresentValue)
	assert.Equal(t, "2735.54", result.TotalPresentValue.StringFixed(2))
	assert.Equal(t, "3000.00", result.TotalFutureValue.StringFixed(2))
	assert.True(t, result.Value().Equal(*result.TotalPresentValue))
}

func TestValuate_EmptySeries(t *testing.T) {
	result := Valuate(nil, domain.ValuationParams{BaseAmount: d("1000")})
	assert.Empty(t, result.Rows)
	assert.NotNil(t, result.Rows)
	assert.True(t, result.TotalFutureValue.IsZero())
	assert.Nil(t, result.TotalPresentValue)

	rate := d("0.04")
	discounted := Valuate([]domain.PeriodBucket{}, domain.ValuationParams{DiscountRate: &rate})
	require.NotNil(t, discounted.TotalPresentValue)
	assert.True(t, discounted.TotalPresentValue.IsZero())
}

func TestValuate_GrowingLossMatchesClosedForm(t *testing.T) {
	result := Valuate(fullYearBuckets(t, 2024, 20), domain.ValuationParams{
		BaseAmount:       d("50000").Sub(d("30000")),
		GrowthRate:       d("0.03"),
		AdjustmentFactor: decimal.NewFromInt(1),
	})

	expected := decimal.Zero
	for k := 0; k < 20; k++ {
		expected = expected.Add(Grow(d("20000"), d("0.03"), k))
	}
	assert.True(t, result.TotalFutureValue.Equal(expected))

	closed := FutureValueOfGrowingSeries(d("20000"), d("0.03"), 20)
	assert.Equal(t, closed.StringFixed(2), result.TotalFutureValue.StringFixed(2))
	assert.Equal(t, "537407.49", result.TotalFutureValue.StringFixed(2))
}

func TestValuate_Frequency(t *testing.T) {
	buckets := fullYearBuckets(t, 2024, 10)

	t.Run("every third year", func(t *testing.T) {
		result := Valuate(buckets, domain.ValuationParams{
			BaseAmount:       d("1500"),
			GrowthRate:       d("0.05"),
			AdjustmentFactor: decimal.NewFromInt(1),
			FrequencyYears:   d("3.7"),
		})
		require.Len(t, result.Rows, 4)
		for i, row := range result.Rows {
			assert.Equal(t, 2024+3*i, row.Year)
			assert.Equal(t, 3*i, row.YearOffset)
			assert.True(t, row.WageBase.Equal(Grow(d("1500"), d("0.05"), 3*i)), "growth compounds over elapsed years")
		}
	})

	t.Run("semi-annual doubles the yearly cost", func(t *testing.T) {
		result := Valuate(buckets, domain.ValuationParams{
			BaseAmount:       d("250"),
			AdjustmentFactor: decimal.NewFromInt(1),
			FrequencyYears:   d("0.5"),
		})
		require.Len(t, result.Rows, 10)
		assert.Equal(t, "500.00", result.Rows[0].WageBase.StringFixed(2))
		assert.Equal(t, "5000.00", result.TotalFutureValue.StringFixed(2))
	})

	t.Run("annual", func(t *testing.T) {
		for _, f := range []string{"0", "1", "1.5"} {
			result := Valuate(buckets, domain.ValuationParams{
				BaseAmount:       d("100"),
				AdjustmentFactor: decimal.NewFromInt(1),
				FrequencyYears:   d(f),
			})
			assert.Len(t, result.Rows, 10, "frequency %s", f)
		}
	})
}
