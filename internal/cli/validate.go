package cli

import (
	"fmt"

	"github.com/econloss/loss-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input.yaml>",
		Short: "Check an input file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			analyses, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, an := range analyses {
				fp, err := an.Fingerprint()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: valid (%s)\n", an.Name, fp)
				for _, w := range parser.Warnings(an) {
					fmt.Fprintf(out, "  warning: %s\n", w)
				}
			}
			a.logger.Debug("input validated")
			return nil
		},
	}
}
