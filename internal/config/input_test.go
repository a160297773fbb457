package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalInput = "name: \"Minimal\"\n" +
	"evaluee:\n" +
	"  date_of_birth: 1990-01-01\n" +
	"  date_of_injury: 2023-01-01\n" +
	"  date_of_report: 2023-12-01\n" +
	"  worklife_expectancy: 20\n" +
	"pre_injury:\n" +
	"  base_amount: 50000\n" +
	"  growth_rate: 0.03\n" +
	"post_injury:\n" +
	"  base_amount: 50000\n" +
	"  residual_amount: 30000\n" +
	"  growth_rate: \"3%\"\n" +
	"  discount_rate: \"4.5%\"\n"

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "test_analysis_*.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewInputParser(t *testing.T) {
	assert.NotNil(t, NewInputParser())
}

func TestLoadFromFile_Success(t *testing.T) {
	analyses, err := NewInputParser().LoadFromFile(writeTemp(t, minimalInput))
	require.NoError(t, err)
	require.Len(t, analyses, 1)

	a := analyses[0]
	assert.Equal(t, "Minimal", a.Name)
	assert.Equal(t, civil.Date{Year: 2023, Month: time.December, Day: 1}, a.Evaluee.DateOfReport)
	assert.True(t, a.Evaluee.WorklifeExpectancy.Equal(d("20")))

	assert.True(t, a.PreInjury.GrowthRate.Equal(d("0.03")))
	assert.True(t, a.PreInjury.AdjustmentFactor.Equal(d("1")), "adjustment factor defaults to 1")
	assert.Nil(t, a.PreInjury.DiscountRate)
	assert.False(t, a.PreInjury.ApplyDiscounting)

	assert.True(t, a.PostInjury.GrowthRate.Equal(d("0.03")), "percent suffix converted at the boundary")
	require.NotNil(t, a.PostInjury.DiscountRate)
	assert.True(t, a.PostInjury.DiscountRate.Equal(d("0.045")))
	assert.True(t, a.PostInjury.ApplyDiscounting, "a discount rate enables discounting by default")
	assert.True(t, a.PostInjury.ResidualAmount.Equal(d("30000")))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	analyses, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, analyses)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"tab indentation", "evaluee:\n\tdate_of_birth: 1990-01-01\n"},
		{"bad date", "evaluee:\n  date_of_birth: 1990-13-45\n"},
		{"bad rate", "evaluee:\n  date_of_birth: 1990-01-01\npre_injury:\n  growth_rate: three\n"},
		{"unknown field", "evaluee:\n  date_of_birth: 1990-01-01\n  favourite_colour: blue\n"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyses, err := NewInputParser().Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, analyses)
			assert.Contains(t, err.Error(), "failed to parse YAML")
		})
	}
}

func TestParse_RateUnits(t *testing.T) {
	input := minimalInput + "healthcare:\n" +
		"  - name: \"Therapy\"\n" +
		"    boundary: report_to_retirement\n" +
		"    rate_units: percent\n" +
		"    base_amount: 1200\n" +
		"    growth_rate: 7\n" +
		"    discount_rate: 3.5\n" +
		"    adjustment_factor: 90\n" +
		"    frequency_years: 2\n"

	analyses, err := NewInputParser().Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, analyses[0].Healthcare, 1)

	item := analyses[0].Healthcare[0]
	assert.True(t, item.Active, "items are active unless disabled")
	assert.Equal(t, domain.BoundaryReportToRetirement, item.Boundary)
	assert.True(t, item.Parameters.GrowthRate.Equal(d("0.07")))
	assert.True(t, item.Parameters.DiscountRate.Equal(d("0.035")))
	assert.True(t, item.Parameters.AdjustmentFactor.Equal(d("0.9")))
	assert.True(t, item.Parameters.FrequencyYears.Equal(d("2")), "frequency is not a rate")
}

func TestParse_MixedNotationRejected(t *testing.T) {
	input := minimalInput + "  benefits_rate: 0.2\n"
	_, err := NewInputParser().Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post_injury")
	assert.Contains(t, err.Error(), "use one notation")
}

func TestParse_AnalysesList(t *testing.T) {
	input := "analyses:\n" +
		"  - name: \"First\"\n" +
		"    evaluee:\n" +
		"      date_of_birth: 1980-05-05\n" +
		"      date_of_injury: 2020-01-01\n" +
		"      date_of_report: 2022-01-01\n" +
		"      worklife_expectancy: 15\n" +
		"  - evaluee:\n" +
		"      date_of_birth: 1975-05-05\n" +
		"      date_of_injury: 2019-01-01\n" +
		"      date_of_report: 2022-01-01\n" +
		"      worklife_expectancy: 10\n"

	analyses, err := NewInputParser().Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, "First", analyses[0].Name)
	assert.Equal(t, "Analysis 2", analyses[1].Name)
}

func TestParse_NoAnalyses(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("name: \"orphan\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no analyses provided")
}

func TestParse_AEF(t *testing.T) {
	input := minimalInput + "  aef:\n" +
		"    rate_units: percent\n" +
		"    worklife_adjustment: 85.7\n" +
		"    apply_personal_consumption: false\n"

	analyses, err := NewInputParser().Parse([]byte(input))
	require.NoError(t, err)

	aef := analyses[0].PostInjury.AEF
	require.NotNil(t, aef)
	assert.True(t, aef.WorklifeAdjustment.Equal(d("0.857")))
	assert.True(t, aef.IncomeTaxRate.Equal(d("0.22")), "omitted components take defaults")
	assert.False(t, aef.ApplyPersonalConsumption)

	_, err = NewInputParser().Parse([]byte(input + "  adjustment_factor: \"80%\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestParse_Pension(t *testing.T) {
	input := minimalInput + "pension:\n" +
		"  type: defined_benefit\n" +
		"  final_average_salary: 80000\n" +
		"  years_of_service: 25\n" +
		"  benefit_multiplier: \"1.5%\"\n"

	analyses, err := NewInputParser().Parse([]byte(input))
	require.NoError(t, err)

	p := analyses[0].Pension
	require.NotNil(t, p)
	assert.Equal(t, domain.DefinedBenefit, p.Type)
	require.NotNil(t, p.Params.BenefitMultiplier)
	assert.True(t, p.Params.BenefitMultiplier.Equal(d("0.015")))
	assert.Nil(t, p.Params.ExpectedReturnRate)
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		extra   string
		replace [2]string
		want    string
		isRange bool
	}{
		{name: "report before injury", replace: [2]string{"date_of_report: 2023-12-01", "date_of_report: 2022-12-01"}, want: "evaluee", isRange: true},
		{name: "negative worklife", replace: [2]string{"worklife_expectancy: 20", "worklife_expectancy: -1"}, want: "worklife_expectancy"},
		{name: "negative growth", replace: [2]string{"growth_rate: 0.03", "growth_rate: -0.03"}, want: "pre_injury: growth_rate"},
		{name: "discounting without rate", extra: "  apply_discounting: true\n", replace: [2]string{"  discount_rate: \"4.5%\"\n", ""}, want: "apply_discounting requires discount_rate"},
		{name: "unknown boundary", extra: "healthcare:\n  - name: \"X\"\n    boundary: birth_to_death\n", want: "unknown boundary"},
		{name: "missing boundary", extra: "healthcare:\n  - name: \"X\"\n    base_amount: 10\n", want: "boundary is required"},
		{name: "override out of range", extra: "healthcare:\n  - name: \"X\"\n    boundary: injury_to_death\n    portion_overrides:\n      2024: 1.5\n", want: "portion override for 2024"},
		{name: "unknown pension type", extra: "pension:\n  type: cash_balance\n", want: "unsupported type"},
		{name: "unknown rate unit", extra: "  rate_units: basis_points\n", want: "unknown rate unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := minimalInput
			if tt.replace[0] != "" {
				input = strings.Replace(input, tt.replace[0], tt.replace[1], 1)
			}
			input += tt.extra

			_, err := NewInputParser().Parse([]byte(input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.isRange, errors.Is(err, domain.ErrInvalidRange))
		})
	}
}

func TestWarnings(t *testing.T) {
	input := strings.Replace(minimalInput, "growth_rate: 0.03", "growth_rate: 3", 1)
	input = strings.Replace(input, "residual_amount: 30000", "residual_amount: 60000", 1)

	analyses, err := NewInputParser().Parse([]byte(input))
	require.NoError(t, err)

	warnings := NewInputParser().Warnings(analyses[0])
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "pre_injury: growth_rate of 3 is above 100%")
	assert.Contains(t, warnings[1], "residual_amount exceeds base_amount")
}

func TestExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	analyses, err := parser.Parse(ExampleConfiguration())
	require.NoError(t, err)
	require.Len(t, analyses, 1)

	a := analyses[0]
	assert.Len(t, a.Healthcare, 4)
	assert.False(t, a.Healthcare[3].Active)
	assert.True(t, a.PostInjury.DiscountRate.Equal(d("0.0425")))
	assert.True(t, a.Healthcare[2].PortionOverrides[2024].Equal(d("0.5")))
	require.NotNil(t, a.Pension)
	assert.Equal(t, domain.DefinedContribution, a.Pension.Type)
	assert.Empty(t, parser.Warnings(a))
}
