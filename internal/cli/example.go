package cli

import (
	"fmt"
	"os"

	"github.com/econloss/loss-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example input file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := config.ExampleConfiguration()
			if len(args) == 0 {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write example: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", args[0])
			return nil
		},
	}
}
