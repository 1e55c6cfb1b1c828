package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	waituntil "github.com/rwx-research/wait-until"
	"github.com/rwx-research/wait-until/internal/cli"
	"github.com/rwx-research/wait-until/internal/errors"
	"github.com/rwx-research/wait-until/internal/exec"
	"github.com/rwx-research/wait-until/internal/logging"
	"github.com/rwx-research/wait-until/internal/terminal"
)

// NewRootCmd returns the `wait-until` command, writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) (*cobra.Command, error) {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "wait-until [flags] [--] <command> [args...]",
		Short:         "Display a spinner until a command has finished",
		Long:          descriptionWaitUntil,
		Args:          cobra.ArbitraryArgs,
		Version:       waituntil.Version,
		SilenceErrors: true, // Errors are manually printed in 'main'
		SilenceUsage:  true, // Disables usage text on error
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWaitUntil(cmd, v, args)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Everything after the first positional argument belongs to the sub-process, including its flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().StringP("message", "m", cli.DefaultMessage, "the status message displayed next to the spinner")
	rootCmd.Flags().StringP(
		"command",
		"c",
		"",
		"a command line to execute, split into arguments like a shell would; positional arguments are appended",
	)

	modes := make([]string, 0, len(terminal.Modes))
	for _, mode := range terminal.Modes {
		modes = append(modes, string(mode))
	}
	rootCmd.Flags().String(
		"spinner",
		string(terminal.ModeAuto),
		fmt.Sprintf("when to render the spinner (%s)", strings.Join(modes, ", ")),
	)

	rootCmd.Flags().Bool("debug", false, "print debug output to stderr")

	if err := bindConfig(v, rootCmd.Flags()); err != nil {
		return nil, errors.WithStack(err)
	}

	return rootCmd, nil
}

func runWaitUntil(cmd *cobra.Command, v *viper.Viper, args []string) error {
	command, err := cmd.Flags().GetString("command")
	if err != nil {
		return errors.NewInternalError("unable to read flag %q: %w", "command", err)
	}

	cfg, runConfig, err := loadRunConfig(v, command, args)
	if err != nil {
		return errors.Wrap(err, "unable to load configuration")
	}

	if runConfig.Command == "" && len(runConfig.Args) == 0 {
		if err := cmd.Usage(); err != nil {
			return errors.NewSystemError("unable to print usage: %w", err)
		}

		return errors.NewInputError("No command was provided")
	}

	log := logging.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
	defer func() {
		_ = log.Sync()
	}()

	service := cli.Service{
		Log:        log,
		TaskRunner: exec.Local{},
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}

	exitCode, err := service.Run(cmd.Context(), runConfig)
	if err != nil {
		return errors.WithStack(err)
	}

	if exitCode != 0 {
		return errors.NewExecutionError(exitCode, "sub-process exited with code %d", exitCode)
	}

	return nil
}
