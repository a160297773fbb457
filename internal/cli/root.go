// Package cli wires the command-line interface of the loss calculator.
package cli

import (
	"fmt"

	"github.com/econloss/loss-calculator/internal/config"
	"github.com/econloss/loss-calculator/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands once settings are loaded.
type app struct {
	v        *viper.Viper
	settings *config.AppSettings
	logger   *zap.Logger

	settingsFile string
	envFile      string
}

// NewRootCommand builds the losscalc command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "losscalc",
		Short:         "Forensic economic loss calculator",
		Long:          "losscalc projects pre-injury and post-injury earnings loss, healthcare costs and pension values for an injured evaluee.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.settingsFile, "settings", "", "application settings file (yaml, json or toml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with LOSSCALC_* overrides")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")
	flags.StringP("format", "f", "", "output format (see 'losscalc formats')")
	flags.StringP("output-dir", "o", "", "write the report into this directory instead of stdout")

	mustBind(a.v, "logging.level", root, "log-level")
	mustBind(a.v, "logging.format", root, "log-format")
	mustBind(a.v, "output.format", root, "format")
	mustBind(a.v, "output.directory", root, "output-dir")

	root.AddCommand(
		newCalculateCommand(a),
		newValidateCommand(a),
		newExampleCommand(),
		newAEFCommand(a),
		newPensionCommand(a),
		newFormatsCommand(),
	)
	return root
}

func mustBind(v *viper.Viper, key string, cmd *cobra.Command, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func (a *app) load(cmd *cobra.Command) error {
	settings, err := config.LoadAppSettings(a.v, a.settingsFile, a.envFile)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(settings.Logging)
	if err != nil {
		return err
	}
	a.settings = settings
	a.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}
