package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/timestamp/internal/exec"
	log "github.com/cloudposse/timestamp/pkg/logger"
)

func newConfigCmd(c *cli) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `This command prints the configuration after merging 'timestamp.yaml',
TIMESTAMP_* environment variables and global flags.`,
		Example: `timestamp config
timestamp config --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			if c.config.ConfigPath != "" {
				log.Info("Using config", "file", c.config.ConfigPath)
			}
			return e.ExecuteConfig(out, c.config, format, isTerminal(out))
		},
	}

	configCmd.Flags().String("format", e.FormatYAML, "Output format: 'yaml' or 'json'")
	return configCmd
}
