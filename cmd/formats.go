package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/timestamp/internal/exec"
	"github.com/cloudposse/timestamp/pkg/pager"
	"github.com/cloudposse/timestamp/pkg/ui/markdown"
)

func newFormatsCmd(_ *cli) *cobra.Command {
	var usePager bool

	cmd := &cobra.Command{
		Use:     "formats",
		Short:   "List the display formats and pattern tokens",
		Long:    `This command prints the named display formats and the pattern tokens accepted by 'timestamp run --format'.`,
		Example: "timestamp formats\ntimestamp formats --pager",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			width := terminalWidth(out, markdown.DefaultWidth)
			return e.ExecuteFormats(pager.New(out, usePager), uint(width), isTerminal(out))
		},
	}

	cmd.Flags().BoolVar(&usePager, "pager", false, "Page the reference when it does not fit the terminal")
	return cmd
}
