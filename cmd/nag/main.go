package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/nag/internal/cli"
	"github.com/CodexForgeBR/nag/internal/config"
	"github.com/CodexForgeBR/nag/internal/exitcode"
	"github.com/CodexForgeBR/nag/internal/logging"
	"github.com/CodexForgeBR/nag/internal/nag"
	"github.com/CodexForgeBR/nag/internal/notification"
	"github.com/CodexForgeBR/nag/internal/schedule"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg := config.NewDefaultConfig()

	rootCmd := newRootCmd(cfg, func(cmd *cobra.Command, args []string) error {
		return runNag(cmd, cfg, args)
	})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		return exitcode.FromError(err)
	}
	return exitcode.Success
}

func newRootCmd(cfg *config.Config, runE func(*cobra.Command, []string) error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nag <in|at> <target> <message...>",
		Short:   "Speak a reminder after a delay or at a clock time",
		Long:    "nag waits for a relative duration or an absolute clock time and then speaks a message.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runE(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.BindFlags(rootCmd, cfg)
	cli.SetCustomHelp(rootCmd)
	return rootCmd
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// so config file values are not overridden by flag defaults.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if cmd.Flags().Changed("speech-command") {
		overrides["SPEECH_COMMAND"] = cfg.SpeechCommand
	}
	if cmd.Flags().Changed("stale-threshold") {
		overrides["STALE_THRESHOLD"] = fmt.Sprintf("%d", cfg.StaleThreshold)
	}
	if cmd.Flags().Changed("verbose") {
		overrides["VERBOSE"] = fmt.Sprintf("%t", cfg.Verbose)
	}

	return overrides
}

// loadConfig merges config files under the flags that were set explicitly.
func loadConfig(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	finalCfg, err := config.LoadWithPrecedence(config.GlobalPath(), config.ProjectFile, cfg.ConfigFile, buildCLIOverrides(cmd, cfg))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI-only flags
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.Estimate = cfg.Estimate
	return finalCfg, nil
}

func newSpeaker(cfg *config.Config) (notification.Speaker, error) {
	if cfg.SpeechCommand != "" {
		s, err := notification.NewCommandSpeaker(cfg.SpeechCommand)
		if err != nil {
			return nil, fmt.Errorf("speech command: %w", err)
		}
		return s, nil
	}
	return notification.ForPlatform(runtime.GOOS), nil
}

func runNag(cmd *cobra.Command, cfg *config.Config, args []string) error {
	cfg, err := loadConfig(cmd, cfg)
	if err != nil {
		return err
	}
	logging.SetVerbose(cfg.Verbose)

	clock := schedule.RealClock{}
	req, err := nag.NewRequest(clock, args[0], args[1], args[2:], cfg.Estimate)
	if err != nil {
		return err
	}
	logging.Debug(fmt.Sprintf("resolved %s %q to a wait of %s", req.Mode, req.Target,
		logging.FormatDuration(int(req.Wait/time.Second))))

	speaker, err := newSpeaker(cfg)
	if err != nil {
		return err
	}

	s := &nag.Scheduler{
		Clock:      clock,
		Speaker:    speaker,
		StaleAfter: time.Duration(cfg.StaleThreshold) * time.Second,
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
	}

	outcome, err := s.Run(context.Background(), req)
	if err != nil {
		return err
	}
	logging.Debug("finished: " + outcome.String())
	return nil
}
