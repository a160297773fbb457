package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/econloss/loss-calculator/internal/calculation"
	"github.com/econloss/loss-calculator/internal/domain"
	"github.com/econloss/loss-calculator/internal/output"
	money "github.com/econloss/loss-calculator/pkg/decimal"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// percentFlag binds a rate flag written in percent ("85.7" or "85.7%") to a fraction.
type percentFlag struct {
	name  string
	usage string
	dst   *decimal.Decimal
}

func newAEFCommand(a *app) *cobra.Command {
	in := domain.DefaultAEFInputs()
	var asJSON bool

	rates := []percentFlag{
		{"base", "base percentage", &in.Base},
		{"worklife-adjustment", "worklife adjustment percentage", &in.WorklifeAdjustment},
		{"unemployment", "unemployment factor percentage", &in.UnemploymentFactor},
		{"income-tax", "income tax rate percentage", &in.IncomeTaxRate},
		{"fringe-benefits", "fringe benefits percentage", &in.FringeBenefits},
		{"personal-consumption", "personal consumption percentage", &in.PersonalConsumption},
	}

	cmd := &cobra.Command{
		Use:   "aef",
		Short: "Compute an adjusted earnings factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readPercentFlags(cmd, rates); err != nil {
				return err
			}
			result := calculation.AdjustedEarningsFactor(in)
			a.logger.Debug("adjusted earnings factor computed")

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ADJUSTED EARNINGS FACTOR")
			fmt.Fprintf(tw, "Base:\t%s\n", output.FormatPercentage(in.Base))
			fmt.Fprintf(tw, "Worklife adjusted (%s):\t%s\n", output.FormatPercentage(in.WorklifeAdjustment), output.FormatPercentage(result.WorklifeAdjusted))
			fmt.Fprintf(tw, "Unemployment adjusted (%s):\t%s\n", output.FormatPercentage(in.UnemploymentFactor), output.FormatPercentage(result.UnemploymentAdjusted))
			fmt.Fprintf(tw, "Tax adjusted (%s):\t%s\n", output.FormatPercentage(in.IncomeTaxRate), output.FormatPercentage(result.TaxAdjusted))
			fmt.Fprintf(tw, "Fringe adjusted (%s):\t%s\n", output.FormatPercentage(in.FringeBenefits), output.FormatPercentage(result.FringeAdjusted))
			if in.ApplyPersonalConsumption {
				fmt.Fprintf(tw, "Personal consumption:\t%s\n", output.FormatPercentage(in.PersonalConsumption))
			} else {
				fmt.Fprintln(tw, "Personal consumption:\tnot applied")
			}
			fmt.Fprintf(tw, "AEF:\t%s\t(%s)\n", result.Factor.StringFixed(6), output.FormatPercentage(result.Factor))
			return tw.Flush()
		},
	}

	for _, r := range rates {
		cmd.Flags().String(r.name, money.ToPercent(*r.dst).String(), r.usage)
	}
	cmd.Flags().BoolVar(&in.ApplyPersonalConsumption, "apply-personal-consumption", in.ApplyPersonalConsumption, "deduct personal consumption")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func readPercentFlags(cmd *cobra.Command, flags []percentFlag) error {
	for _, f := range flags {
		raw, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return err
		}
		v, err := money.ParseRate(raw, money.UnitPercent)
		if err != nil {
			return fmt.Errorf("--%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return nil
}
