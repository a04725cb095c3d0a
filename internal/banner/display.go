// Package banner renders the nag console output.
//
// PrintTarget writes the single result line a caller can rely on; the
// summary banner is decoration for verbose runs and goes wherever the
// caller points it (normally stderr).
package banner

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/nag/internal/logging"
)

var (
	targetColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	headerColor = color.New(color.FgCyan).SprintFunc()
)

const separator = "═══════════════════════════════════════════════════"

// PrintTarget writes the resolved target time as one line.
func PrintTarget(w io.Writer, formatted string) {
	fmt.Fprintln(w, targetColor(formatted))
}

// PrintSummary writes a framed description of a pending reminder.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  nag at 3pm
//	═══════════════════════════════════════════════════
//	  Fires:      3:00pm
//	  Wait:       1h 0m 0s
//	  Message:    stand up
//	═══════════════════════════════════════════════════
func PrintSummary(w io.Writer, mode, target, fires string, waitSecs int, message string) {
	sep := headerColor(separator)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor(fmt.Sprintf("  nag %s %s", mode, target)))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Fires:      %s\n", fires)
	fmt.Fprintf(w, "  Wait:       %s\n", logging.FormatDuration(waitSecs))
	fmt.Fprintf(w, "  Message:    %s\n", message)
	fmt.Fprintln(w, sep)
}
