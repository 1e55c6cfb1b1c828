package main

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rwx-research/wait-until/internal/cli"
	"github.com/rwx-research/wait-until/internal/errors"
	"github.com/rwx-research/wait-until/internal/terminal"
)

// envPrefix is prepended to every configuration key when looking it up in the environment, e.g. WAIT_UNTIL_MESSAGE.
const envPrefix = "WAIT_UNTIL"

// configKeys are bound to the flag of the same name and to the matching environment variable. `--command` is read from
// its flag only, since it is prepended to the positional arguments.
var configKeys = []string{"debug", "message", "spinner"}

// config is the internal representation of the configuration. Flags take precedence over environment variables.
type config struct {
	Debug   bool   `mapstructure:"debug"`
	Message string `mapstructure:"message"`
	Spinner string `mapstructure:"spinner"`
}

func bindConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return errors.NewInternalError("unable to bind flag %q: %w", key, err)
		}
	}

	return nil
}

// loadRunConfig reads the configuration and combines it with the command line and the positional arguments.
func loadRunConfig(v *viper.Viper, command string, args []string) (config, cli.RunConfig, error) {
	var cfg config

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, cli.RunConfig{}, errors.NewConfigurationError("unable to parse configuration: %w", err)
	}

	mode, err := terminal.ParseMode(cfg.Spinner)
	if err != nil {
		return cfg, cli.RunConfig{}, errors.WithStack(err)
	}

	return cfg, cli.RunConfig{
		Command: command,
		Args:    args,
		Message: cfg.Message,
		Spinner: mode,
	}, nil
}
