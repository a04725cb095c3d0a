// Package cli provides flag binding and validation for the nag CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/nag/internal/config"
)

// BindFlags registers the CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	flags.BoolVarP(&cfg.Estimate, "estimate", "e", false, "Print the target time and exit without waiting")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log the resolved wait, countdown and staleness decision")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
	flags.StringVar(&cfg.SpeechCommand, "speech-command", "", "Speech program to run instead of the platform default")
	flags.IntVar(&cfg.StaleThreshold, "stale-threshold", 30, "Seconds the wake-up may drift before the reminder is dropped")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cmd.Flags().Changed("stale-threshold") && cfg.StaleThreshold <= 0 {
		return fmt.Errorf("--stale-threshold must be positive, got: %d", cfg.StaleThreshold)
	}

	return nil
}
