// Package notification delivers a reminder through the platform's
// text-to-speech command.
package notification

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrSpeechFailed is returned when the speech command cannot be launched
// or exits with an error.
var ErrSpeechFailed = errors.New("speech invocation failed")

// Speaker speaks a free-text message and returns once it has been spoken.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// CommandSpeaker speaks by running an external program.
type CommandSpeaker struct {
	// Name is the executable, looked up in PATH.
	Name string
	// Args builds the argument list for a message.
	Args func(text string) []string
}

// ForPlatform returns the speech command for the given GOOS value:
// say on darwin, PowerShell System.Speech on windows, spd-say elsewhere.
func ForPlatform(goos string) CommandSpeaker {
	switch goos {
	case "darwin":
		return CommandSpeaker{Name: "say", Args: trailing()}
	case "windows":
		return CommandSpeaker{Name: "powershell", Args: powershellArgs}
	default:
		return CommandSpeaker{Name: "spd-say", Args: trailing("--wait")}
	}
}

// NewCommandSpeaker parses a command line such as "espeak -s 140". The
// message is passed as the last argument.
func NewCommandSpeaker(command string) (CommandSpeaker, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return CommandSpeaker{}, fmt.Errorf("speech command is empty")
	}
	return CommandSpeaker{Name: fields[0], Args: trailing(fields[1:]...)}, nil
}

// Speak runs the command synchronously. Its output is passed through to
// the terminal.
func (s CommandSpeaker) Speak(ctx context.Context, text string) error {
	var args []string
	if s.Args != nil {
		args = s.Args(text)
	} else {
		args = []string{text}
	}

	cmd := exec.CommandContext(ctx, s.Name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpeechFailed, s.Name, err)
	}
	return nil
}

// Available reports whether the executable is found in PATH.
func (s CommandSpeaker) Available() bool {
	_, err := exec.LookPath(s.Name)
	return err == nil
}

func (s CommandSpeaker) String() string {
	return s.Name
}

// trailing returns an Args builder that appends the message after fixed.
func trailing(fixed ...string) func(string) []string {
	return func(text string) []string {
		args := make([]string, 0, len(fixed)+1)
		args = append(args, fixed...)
		return append(args, text)
	}
}

func powershellArgs(text string) []string {
	quoted := "'" + strings.ReplaceAll(text, "'", "''") + "'"
	script := "Add-Type -AssemblyName System.Speech; " +
		"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(" + quoted + ")"
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}
