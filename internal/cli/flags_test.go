package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/nag/internal/config"
)

func newCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)
	return cmd
}

func TestBindFlags_DefaultValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{}))

	assert.False(t, cfg.Estimate)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.ConfigFile)
	assert.Empty(t, cfg.SpeechCommand)
	assert.Equal(t, 30, cfg.StaleThreshold)
}

func TestBindFlags_BoolFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(*config.Config) bool
	}{
		{"estimate long", []string{"--estimate"}, func(c *config.Config) bool { return c.Estimate }},
		{"estimate short", []string{"-e"}, func(c *config.Config) bool { return c.Estimate }},
		{"verbose long", []string{"--verbose"}, func(c *config.Config) bool { return c.Verbose }},
		{"verbose short", []string{"-v"}, func(c *config.Config) bool { return c.Verbose }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			require.NoError(t, newCommand(cfg).ParseFlags(tt.args))
			assert.True(t, tt.check(cfg))
		})
	}
}

func TestBindFlags_ValueFlags(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--speech-command", "espeak -s 140", "--stale-threshold", "90", "--config", "x.conf"}))

	assert.Equal(t, "espeak -s 140", cfg.SpeechCommand)
	assert.Equal(t, 90, cfg.StaleThreshold)
	assert.Equal(t, "x.conf", cfg.ConfigFile)
	assert.True(t, cmd.Flags().Changed("stale-threshold"))
	assert.False(t, cmd.Flags().Changed("verbose"))
}

func TestBindFlags_FlagsAfterPositionals(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := newCommand(cfg)

	require.NoError(t, cmd.ParseFlags([]string{"in", "5", "tea", "is", "ready", "-e", "--", "-v"}))

	assert.True(t, cfg.Estimate)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, []string{"in", "5", "tea", "is", "ready", "-v"}, cmd.Flags().Args())
}

func TestValidateFlags(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "nag.conf")
	require.NoError(t, os.WriteFile(existing, []byte("VERBOSE=true\n"), 0644))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no flags", nil, ""},
		{"existing config", []string{"--config", existing}, ""},
		{"missing config", []string{"--config", "/nonexistent/nag.conf"}, "--config"},
		{"zero threshold", []string{"--stale-threshold", "0"}, "must be positive"},
		{"negative threshold", []string{"--stale-threshold", "-3"}, "must be positive"},
		{"positive threshold", []string{"--stale-threshold", "5"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := newCommand(cfg)
			require.NoError(t, cmd.ParseFlags(tt.args))

			err := ValidateFlags(cmd, cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
