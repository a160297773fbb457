package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override application settings.
const EnvPrefix = "LOSSCALC"

// AppSettings holds the settings of the command-line application, as opposed to the analysis input.
type AppSettings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Output  OutputSettings  `mapstructure:"output"`
}

// LoggingSettings holds logging configuration options
type LoggingSettings struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	OutputFile string `mapstructure:"output_file"`
}

// OutputSettings holds output format configuration options
type OutputSettings struct {
	Format    string `mapstructure:"format"`
	Directory string `mapstructure:"directory"`
}

// SetDefaults registers the default application settings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("output.directory", "")
}

// LoadAppSettings layers defaults, an optional settings file, a .env file and
// LOSSCALC_* environment variables, in increasing precedence. Flags bound to v by
// the caller take precedence over all of them.
func LoadAppSettings(v *viper.Viper, settingsFile, envFile string) (*AppSettings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", settingsFile, err)
		}
	}

	var settings AppSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return &settings, nil
}
