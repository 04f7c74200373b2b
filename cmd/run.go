package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	e "github.com/cloudposse/timestamp/internal/exec"
	cfg "github.com/cloudposse/timestamp/pkg/config"
	"github.com/cloudposse/timestamp/pkg/timestamp"
)

func newRunCmd(c *cli) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the time label",
		Long: `This command starts the time label. On a terminal it opens an interactive view
(space starts and stops, s/m/h change the step, f switches format, c changes color, q quits).
Otherwise, or with --plain, it prints one line per tick.`,
		Example: `timestamp run
timestamp run --format ms --start 90 --direction decrease
timestamp run --start now --format "EEE HH:mm:ss" --color cyan
timestamp run --plain --ticks 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("color") || flags.Changed("bold") {
				if c.config.Label.Attributes == nil {
					c.config.Label.Attributes = map[string]string{}
				}
				if flags.Changed("color") {
					color, _ := flags.GetString("color")
					c.config.Label.Attributes[string(timestamp.Foreground)] = color
				}
				if flags.Changed("bold") {
					bold, _ := flags.GetBool("bold")
					c.config.Label.Attributes[string(timestamp.Bold)] = strconv.FormatBool(bold)
				}
			}

			out := cmd.OutOrStdout()
			interactive := isTerminal(out) && isTerminal(cmd.InOrStdin())
			return e.ExecuteRun(cmd.Context(), c.config, cmd.InOrStdin(), out, interactive)
		},
	}

	flags := runCmd.Flags()
	flags.StringP("format", "f", cfg.DefaultFormat, "Display format: 'hms', 'ms', an LDML pattern like 'HH:mm', or 'strftime:%H:%M'. See 'timestamp formats'")
	flags.StringP("direction", "d", cfg.DefaultDirection, "Time direction: 'increase' or 'decrease'")
	flags.String("start", cfg.DefaultStart, "Start value: 'zero', 'now', seconds since the Unix epoch, or an RFC3339 time")
	flags.String("scale", cfg.DefaultScale, "Step per tick, e.g. '1s', '2m', '1.5h'")
	flags.Duration("zero-offset", 0, "Offset subtracted from the cursor before formatting when starting at zero")
	flags.Bool("utc", false, "Display the time in UTC instead of the local time zone")
	flags.Bool("plain", false, "Print one line per tick instead of the interactive view")
	flags.Uint64("ticks", 0, "Stop plain output after this many ticks (0 runs until interrupted)")
	flags.String("color", "", "Label color: a palette name like 'cyan', a hex value or an ANSI code")
	flags.Bool("bold", false, "Render the label in bold")

	for key, name := range map[string]string{
		"label.format":      "format",
		"label.direction":   "direction",
		"label.start":       "start",
		"label.scale":       "scale",
		"label.zero_offset": "zero-offset",
		"label.utc":         "utc",
		"label.plain":       "plain",
		"label.ticks":       "ticks",
	} {
		bindFlag(c.v, flags, key, name)
	}

	return runCmd
}
