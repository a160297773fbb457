package cli

import (
	"fmt"

	"github.com/econloss/loss-calculator/internal/calculation"
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/econloss/loss-calculator/internal/output"
	money "github.com/econloss/loss-calculator/pkg/decimal"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPensionCommand(a *app) *cobra.Command {
	var (
		pensionType string
		years       int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "pension",
		Short: "Project a defined benefit or defined contribution pension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params domain.PensionParams
			var err error
			if params.FinalAverageSalary, err = optionalDecimal(cmd, "final-average-salary", false); err != nil {
				return err
			}
			if params.YearsOfService, err = optionalDecimal(cmd, "years-of-service", false); err != nil {
				return err
			}
			if params.BenefitMultiplier, err = optionalDecimal(cmd, "multiplier", true); err != nil {
				return err
			}
			if params.AnnualContribution, err = optionalDecimal(cmd, "contribution", false); err != nil {
				return err
			}
			if params.ExpectedReturnRate, err = optionalDecimal(cmd, "return", true); err != nil {
				return err
			}
			if cmd.Flags().Changed("years") {
				params.ContributionYears = &years
			}

			projection, err := calculation.ProjectPension(domain.PensionType(pensionType), params)
			if err != nil {
				return err
			}
			a.logger.Debug("pension projected", zap.String("type", pensionType), zap.String("value", projection.Value().StringFixed(2)))

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(projection, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			_, err = out.Write(output.PensionExhibit(&projection))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&pensionType, "type", string(domain.DefinedBenefit), "defined_benefit or defined_contribution")
	flags.String("final-average-salary", "", "final average salary (defined benefit)")
	flags.String("years-of-service", "", "years of service (defined benefit)")
	flags.String("multiplier", "", "benefit multiplier in percent (defined benefit)")
	flags.String("contribution", "", "annual contribution (defined contribution)")
	flags.String("return", "", "expected annual return in percent (defined contribution)")
	flags.IntVar(&years, "years", 0, "contribution years (defined contribution)")
	flags.BoolVar(&asJSON, "json", false, "print the projection as JSON")
	return cmd
}

// optionalDecimal returns nil for flags the user did not set. Percent flags accept
// "1.5" or "1.5%" and are returned as fractions.
func optionalDecimal(cmd *cobra.Command, name string, percent bool) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	var v decimal.Decimal
	if percent {
		v, err = money.ParseRate(raw, money.UnitPercent)
	} else {
		v, err = decimal.NewFromString(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &v, nil
}
