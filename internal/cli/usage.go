package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `nag - speak a reminder after a delay or at a clock time

USAGE
  nag [flags] <in|at> <target> <message...>

MODES
  in <duration>                          Wait a relative duration:
                                           mm        minutes        (nag in 25 tea)
                                           mm:ss     minutes:secs   (nag in 1:30 eggs)
                                           hh:mm:ss  hours:min:secs (nag in 1:00:00 stretch)
  at <time>                              Wait for a clock time:
                                           3pm, 9:30am     12-hour with am/pm
                                           14:05, 0:30     24-hour
                                           9, 9:30         untagged: an hour already past
                                                           today means the one 12h later

FLAGS
  -e, --estimate                         Print the target time and exit without waiting
  -v, --verbose                          Log the resolved wait, countdown and staleness decision
  --config <path>                        Path to additional config file
  --speech-command <cmd>                 Speech program (default: say, spd-say or PowerShell)
  --stale-threshold <secs>               Drop the reminder if waking this far from the target (default: 30)
  -h, --help                             Show this help text
  --version                              Show version, commit, build date

CONFIG FILES
  Read in order, later wins: $XDG_CONFIG_HOME/nag/config (default
  ~/.config/nag/config), ./.nagrc, --config.
  KEY=VALUE lines; recognized keys: VERBOSE, SPEECH_COMMAND, STALE_THRESHOLD.

OUTPUT
  The target time is printed on stdout, e.g. "3:05pm" or "9:00am (tomorrow)".

EXIT CODES
  0   Success              Reminder spoken, dropped as stale, or estimate printed
  1   Error                Unsupported mode, bad flags, config problems
  2   InvalidFormat        Malformed duration or clock time
  3   SpeechFailed         Speech command could not run
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
