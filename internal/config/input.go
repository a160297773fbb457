package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/econloss/loss-calculator/internal/domain"
	money "github.com/econloss/loss-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of analysis input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates every analysis in a YAML file.
func (ip *InputParser) LoadFromFile(filename string) ([]*domain.Analysis, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML input, converts rates to fractions and validates the result.
func (ip *InputParser) Parse(data []byte) ([]*domain.Analysis, error) {
	var file InputFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty input")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	entries := file.Analyses
	if file.AnalysisFile.Evaluee != nil {
		if len(entries) > 0 {
			return nil, fmt.Errorf("input defines both a top-level analysis and an analyses list")
		}
		entries = []AnalysisFile{file.AnalysisFile}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no analyses provided")
	}

	analyses := make([]*domain.Analysis, 0, len(entries))
	for i := range entries {
		a, err := entries[i].toDomain(i)
		if err != nil {
			return nil, fmt.Errorf("analysis %d: %w", i, err)
		}
		if err := ip.ValidateConfiguration(a); err != nil {
			return nil, fmt.Errorf("analysis %q validation failed: %w", a.Name, err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}

// ValidateConfiguration checks the bounds the engine assumes but does not re-check.
func (ip *InputParser) ValidateConfiguration(a *domain.Analysis) error {
	if err := a.Evaluee.Validate(); err != nil {
		return fmt.Errorf("evaluee: %w", err)
	}
	if a.Evaluee.WorklifeExpectancy.IsNegative() {
		return fmt.Errorf("evaluee: worklife_expectancy cannot be negative")
	}
	if a.Evaluee.YearsToFinalSeparation.IsNegative() {
		return fmt.Errorf("evaluee: years_to_final_separation cannot be negative")
	}
	if a.Evaluee.LifeExpectancy.IsNegative() {
		return fmt.Errorf("evaluee: life_expectancy cannot be negative")
	}

	if err := validateSeries(a.PreInjury); err != nil {
		return fmt.Errorf("pre_injury: %w", err)
	}
	if err := validateSeries(a.PostInjury); err != nil {
		return fmt.Errorf("post_injury: %w", err)
	}
	if a.PostInjury.ResidualAmount.IsNegative() {
		return fmt.Errorf("post_injury: residual_amount cannot be negative")
	}

	for _, item := range a.Healthcare {
		if err := validateHealthcare(item); err != nil {
			return fmt.Errorf("healthcare %q: %w", item.Name, err)
		}
	}

	if a.Pension != nil {
		switch a.Pension.Type {
		case domain.DefinedBenefit, domain.DefinedContribution:
		default:
			return fmt.Errorf("pension: unsupported type %q (want %q or %q)", a.Pension.Type, domain.DefinedBenefit, domain.DefinedContribution)
		}
		if y := a.Pension.Params.ContributionYears; y != nil && *y < 0 {
			return fmt.Errorf("pension: contribution_years cannot be negative")
		}
	}
	return nil
}

func validateSeries(p domain.SeriesParameters) error {
	if p.BaseAmount.IsNegative() {
		return fmt.Errorf("base_amount cannot be negative")
	}
	if p.GrowthRate.IsNegative() {
		return fmt.Errorf("growth_rate cannot be negative")
	}
	if p.AdjustmentFactor.IsNegative() {
		return fmt.Errorf("adjustment_factor cannot be negative")
	}
	if p.BenefitsRate.IsNegative() {
		return fmt.Errorf("benefits_rate cannot be negative")
	}
	if p.FrequencyYears.IsNegative() {
		return fmt.Errorf("frequency_years cannot be negative")
	}
	if p.ApplyDiscounting && p.DiscountRate == nil {
		return fmt.Errorf("apply_discounting requires discount_rate")
	}
	if p.DiscountRate != nil && p.DiscountRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("discount_rate must be greater than -100%%")
	}
	return nil
}

func validateHealthcare(item domain.HealthcareItem) error {
	switch item.Boundary {
	case domain.BoundaryReportToRetirement, domain.BoundaryInjuryToDeath, domain.BoundaryReportToSeparation:
	case "":
		return fmt.Errorf("boundary is required (%s, %s or %s)",
			domain.BoundaryReportToRetirement, domain.BoundaryInjuryToDeath, domain.BoundaryReportToSeparation)
	default:
		return fmt.Errorf("unknown boundary %q", item.Boundary)
	}
	for year, p := range item.PortionOverrides {
		if !p.IsPositive() || p.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("portion override for %d must be in (0, 1], got %s", year, p)
		}
	}
	return validateSeries(item.Parameters)
}

// Warnings reports inputs that are valid but probably mistaken.
func (ip *InputParser) Warnings(a *domain.Analysis) []string {
	var warnings []string
	check := func(section, field string, v decimal.Decimal) {
		if v.GreaterThan(decimal.NewFromInt(1)) {
			warnings = append(warnings, fmt.Sprintf("%s: %s of %s is above 100%%; percentages need a %% suffix or rate_units: percent", section, field, v))
		}
	}
	series := func(section string, p domain.SeriesParameters) {
		check(section, "growth_rate", p.GrowthRate)
		check(section, "benefits_rate", p.BenefitsRate)
		if p.DiscountRate != nil {
			check(section, "discount_rate", *p.DiscountRate)
		}
	}

	series("pre_injury", a.PreInjury)
	series("post_injury", a.PostInjury)
	for _, item := range a.Healthcare {
		series(fmt.Sprintf("healthcare %q", item.Name), item.Parameters)
	}
	if a.PostInjury.ResidualAmount.GreaterThan(a.PostInjury.BaseAmount) {
		warnings = append(warnings, "post_injury: residual_amount exceeds base_amount, the post-injury loss is negative")
	}
	if a.Pension != nil && a.Pension.Params.ExpectedReturnRate != nil {
		check("pension", "expected_return_rate", *a.Pension.Params.ExpectedReturnRate)
	}
	return warnings
}

func (f *AnalysisFile) toDomain(index int) (*domain.Analysis, error) {
	if f.Evaluee == nil {
		return nil, fmt.Errorf("evaluee is required")
	}

	name := f.Name
	if name == "" {
		name = fmt.Sprintf("Analysis %d", index+1)
	}

	a := &domain.Analysis{
		Name: name,
		Evaluee: domain.EvalueeProfile{
			DateOfBirth:            f.Evaluee.DateOfBirth,
			DateOfInjury:           f.Evaluee.DateOfInjury,
			DateOfReport:           f.Evaluee.DateOfReport,
			WorklifeExpectancy:     f.Evaluee.WorklifeExpectancy,
			YearsToFinalSeparation: f.Evaluee.YearsToFinalSeparation,
			LifeExpectancy:         f.Evaluee.LifeExpectancy,
		},
	}

	var err error
	if a.PreInjury, err = f.PreInjury.toDomain(); err != nil {
		return nil, fmt.Errorf("pre_injury: %w", err)
	}
	if a.PostInjury, err = f.PostInjury.toDomain(); err != nil {
		return nil, fmt.Errorf("post_injury: %w", err)
	}

	for i, hf := range f.Healthcare {
		item, err := hf.toDomain(i)
		if err != nil {
			return nil, fmt.Errorf("healthcare %d: %w", i, err)
		}
		a.Healthcare = append(a.Healthcare, item)
	}

	if f.Pension != nil {
		spec, err := f.Pension.toDomain()
		if err != nil {
			return nil, fmt.Errorf("pension: %w", err)
		}
		a.Pension = spec
	}
	return a, nil
}

func (s SeriesFile) toDomain() (domain.SeriesParameters, error) {
	unit, err := money.ParseRateUnit(s.RateUnits)
	if err != nil {
		return domain.SeriesParameters{}, err
	}
	rates := rateSet{
		"growth_rate":       &s.GrowthRate,
		"benefits_rate":     &s.BenefitsRate,
		"adjustment_factor": s.AdjustmentFactor,
		"discount_rate":     s.DiscountRate,
	}
	if err := rates.checkConsistent(unit); err != nil {
		return domain.SeriesParameters{}, err
	}

	p := domain.SeriesParameters{
		BaseAmount:       s.BaseAmount,
		ResidualAmount:   s.ResidualAmount,
		GrowthRate:       s.GrowthRate.Fraction(unit),
		AdjustmentFactor: decimal.NewFromInt(1),
		BenefitsRate:     s.BenefitsRate.Fraction(unit),
		FrequencyYears:   s.FrequencyYears,
	}
	if s.AdjustmentFactor != nil {
		p.AdjustmentFactor = s.AdjustmentFactor.Fraction(unit)
	}
	if s.DiscountRate != nil {
		rate := s.DiscountRate.Fraction(unit)
		p.DiscountRate = &rate
		p.ApplyDiscounting = true
	}
	if s.ApplyDiscounting != nil {
		p.ApplyDiscounting = *s.ApplyDiscounting
	}
	if s.AEF != nil {
		if s.AdjustmentFactor != nil {
			return domain.SeriesParameters{}, fmt.Errorf("adjustment_factor and aef are mutually exclusive")
		}
		in, err := s.AEF.toDomain()
		if err != nil {
			return domain.SeriesParameters{}, fmt.Errorf("aef: %w", err)
		}
		p.AEF = &in
	}
	return p, nil
}

func (a AEFFile) toDomain() (domain.AEFInputs, error) {
	unit, err := money.ParseRateUnit(a.RateUnits)
	if err != nil {
		return domain.AEFInputs{}, err
	}
	rates := rateSet{
		"base":                 a.Base,
		"worklife_adjustment":  a.WorklifeAdjustment,
		"unemployment_factor":  a.UnemploymentFactor,
		"income_tax_rate":      a.IncomeTaxRate,
		"fringe_benefits":      a.FringeBenefits,
		"personal_consumption": a.PersonalConsumption,
	}
	if err := rates.checkConsistent(unit); err != nil {
		return domain.AEFInputs{}, err
	}

	in := domain.DefaultAEFInputs()
	set := func(dst *decimal.Decimal, r *RateValue) {
		if r != nil && r.Set {
			*dst = r.Fraction(unit)
		}
	}
	set(&in.Base, a.Base)
	set(&in.WorklifeAdjustment, a.WorklifeAdjustment)
	set(&in.UnemploymentFactor, a.UnemploymentFactor)
	set(&in.IncomeTaxRate, a.IncomeTaxRate)
	set(&in.FringeBenefits, a.FringeBenefits)
	set(&in.PersonalConsumption, a.PersonalConsumption)
	if a.ApplyPersonalConsumption != nil {
		in.ApplyPersonalConsumption = *a.ApplyPersonalConsumption
	}
	return in, nil
}

func (h HealthcareFile) toDomain(index int) (domain.HealthcareItem, error) {
	params, err := h.SeriesFile.toDomain()
	if err != nil {
		return domain.HealthcareItem{}, err
	}
	name := h.Name
	if name == "" {
		name = fmt.Sprintf("Healthcare %d", index+1)
	}
	item := domain.HealthcareItem{
		Name:       name,
		Boundary:   domain.HealthcareBoundary(h.Boundary),
		Parameters: params,
		Active:     h.Active == nil || *h.Active,
	}
	if len(h.PortionOverrides) > 0 {
		item.PortionOverrides = domain.PortionOverrides(h.PortionOverrides)
	}
	return item, nil
}

func (p PensionFile) toDomain() (*domain.PensionSpec, error) {
	unit, err := money.ParseRateUnit(p.RateUnits)
	if err != nil {
		return nil, err
	}
	rates := rateSet{
		"benefit_multiplier":   p.BenefitMultiplier,
		"expected_return_rate": p.ExpectedReturnRate,
	}
	if err := rates.checkConsistent(unit); err != nil {
		return nil, err
	}

	fraction := func(r *RateValue) *decimal.Decimal {
		if r == nil || !r.Set {
			return nil
		}
		v := r.Fraction(unit)
		return &v
	}
	return &domain.PensionSpec{
		Type: domain.PensionType(p.Type),
		Params: domain.PensionParams{
			FinalAverageSalary: p.FinalAverageSalary,
			YearsOfService:     p.YearsOfService,
			BenefitMultiplier:  fraction(p.BenefitMultiplier),
			AnnualContribution: p.AnnualContribution,
			ExpectedReturnRate: fraction(p.ExpectedReturnRate),
			ContributionYears:  p.ContributionYears,
		},
	}, nil
}
