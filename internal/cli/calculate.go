package cli

import (
	"fmt"

	"github.com/econloss/loss-calculator/internal/calculation"
	"github.com/econloss/loss-calculator/internal/config"
	"github.com/econloss/loss-calculator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalculateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate <input.yaml>",
		Short: "Run every analysis in an input file and report the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.settings.Output.Format
			formatter, err := output.ResolveFormatter(format)
			if err != nil {
				return err
			}

			parser := config.NewInputParser()
			analyses, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			for _, an := range analyses {
				for _, w := range parser.Warnings(an) {
					a.logger.Warn(w, zap.String("analysis", an.Name))
				}
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(a.logger.Sugar())
			results, err := engine.AssembleAll(cmd.Context(), analyses)
			if err != nil {
				return err
			}

			if dir := a.settings.Output.Directory; dir != "" {
				path, err := output.WriteFormatted(formatter, results, dir)
				if err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				a.logger.Info("report written", zap.String("path", path), zap.String("format", formatter.Name()))
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}
			return output.Render(cmd.OutOrStdout(), results, formatter.Name())
		},
	}
}
