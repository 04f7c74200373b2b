package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	tuiUtils "github.com/cloudposse/timestamp/internal/tui/utils"
	"github.com/cloudposse/timestamp/pkg/version"
)

func newVersionCmd(_ *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the CLI version",
		Long:    `This command prints the CLI version`,
		Example: "timestamp version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Print a styled logo on terminals only
			if isTerminal(out) {
				fmt.Fprintln(out)
				if err := tuiUtils.PrintDecoratedText(out, "TIMESTAMP"); err != nil {
					return err
				}
			}

			_, err := fmt.Fprintf(out, "timestamp %s on %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
