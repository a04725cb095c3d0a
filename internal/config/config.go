// Package config defines the nag configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [3]string{
	"VERBOSE",
	"SPEECH_COMMAND",
	"STALE_THRESHOLD",
}

// ProjectFile is the per-directory config file name.
const ProjectFile = ".nagrc"

// Config holds every configuration field for the nag CLI.
type Config struct {
	// Runtime flags.
	Verbose bool

	// SpeechCommand overrides the platform speech program. The message is
	// appended as the last argument. Empty means the platform default.
	SpeechCommand string

	// StaleThreshold is how many seconds the wake-up may drift from the due
	// time before the reminder is dropped.
	StaleThreshold int

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	Estimate   bool
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		StaleThreshold: 30,
	}
}

// GlobalPath returns the user-wide config file location:
// $XDG_CONFIG_HOME/nag/config, falling back to ~/.config/nag/config. It
// returns "" if neither location can be determined.
func GlobalPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "nag", "config")
}
