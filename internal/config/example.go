package config

// exampleConfiguration is a complete single-analysis input covering every section.
const exampleConfiguration = `# Economic loss analysis input.
# Rates are fractions (0.03 = 3%) unless written with a % suffix
# or the section sets rate_units: percent.
name: "Example Evaluee"

evaluee:
  date_of_birth: 1985-04-12
  date_of_injury: 2021-09-15
  date_of_report: 2024-03-01
  worklife_expectancy: 24.6
  years_to_final_separation: 26.1
  life_expectancy: 41.8

pre_injury:
  base_amount: 62000
  growth_rate: 0.032
  adjustment_factor: 0.754
  benefits_rate: 0.20

post_injury:
  rate_units: percent
  base_amount: 62000
  residual_amount: 28500
  growth_rate: 3.2
  discount_rate: 4.25
  benefits_rate: 20
  aef:
    rate_units: percent
    worklife_adjustment: 85.7
    unemployment_factor: 4.2
    income_tax_rate: 22
    fringe_benefits: 30
    apply_personal_consumption: false

healthcare:
  - name: "Physical therapy"
    boundary: report_to_retirement
    base_amount: 7001.05
    growth_rate: "7%"
    discount_rate: "3.5%"
  - name: "Joint replacement"
    boundary: injury_to_death
    base_amount: 45000
    growth_rate: 0.05
    discount_rate: 0.035
    frequency_years: 15
  - name: "Prescription refills"
    boundary: report_to_separation
    base_amount: 240
    growth_rate: 0.04
    frequency_years: 0.25
    portion_overrides:
      2024: 0.5
  - name: "Home modification"
    boundary: report_to_retirement
    active: false
    base_amount: 18000

pension:
  type: defined_contribution
  annual_contribution: 6200
  expected_return_rate: 0.055
`

// ExampleConfiguration returns a complete example input file.
func ExampleConfiguration() []byte {
	return []byte(exampleConfiguration)
}
