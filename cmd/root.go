package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/elewis787/boa"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/timestamp/errors"
	cfg "github.com/cloudposse/timestamp/pkg/config"
	log "github.com/cloudposse/timestamp/pkg/logger"
	"github.com/cloudposse/timestamp/pkg/schema"
)

// cli carries the state shared by the commands of one invocation.
type cli struct {
	v      *viper.Viper
	config schema.Configuration
	logger *log.Logger
}

// NewRootCmd builds the command tree with a fresh configuration.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{v: cfg.NewViper()}

	root := &cobra.Command{
		Use:   "timestamp",
		Short: "A time label that counts up or down in the terminal",
		Long: `Timestamp displays a time cursor that moves once per second, forward or backward,
by a configurable step. It runs as an interactive terminal UI, or prints one line per tick
when the output is not a terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Do not silence usage or errors when help is invoked
			if cmd.Name() != "help" && !cmd.Flags().Changed("help") {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
			}
			return c.initConfig(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "Path to a 'timestamp.yaml' config file")
	root.PersistentFlags().String("logs-level", cfg.DefaultLogsLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off. If the log level is set to Off, no messages are logged")
	root.PersistentFlags().String("logs-file", cfg.DefaultLogsFile, "The file to write logs to. Logs can be written to any file or any standard file descriptor, including '/dev/stdout', '/dev/stderr' and '/dev/null'")
	bindFlag(c.v, root.PersistentFlags(), "logs.level", "logs-level")
	bindFlag(c.v, root.PersistentFlags(), "logs.file", "logs-file")

	root.AddCommand(
		newRunCmd(c),
		newConfigCmd(c),
		newFormatsCmd(c),
		newVersionCmd(c),
	)

	b := boa.New(boa.WithStyles(boa.DefaultStyles()))
	root.SetUsageFunc(b.UsageFunc)
	root.SetHelpFunc(b.HelpFunc)

	return root, c
}

// Execute runs the command line until ctx is done.
// This is called by main.main().
func Execute(ctx context.Context) error {
	root, c := newRootCmd()
	return execute(ctx, root, c)
}

// execute runs root and closes the log file whether or not the command failed.
func execute(ctx context.Context, root *cobra.Command, c *cli) (err error) {
	defer func() {
		if closeErr := c.close(); err == nil {
			err = closeErr
		}
	}()
	return root.ExecuteContext(ctx)
}

func (c *cli) initConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	config, err := cfg.Load(c.v, configPath)
	if err != nil {
		return err
	}
	c.config = config

	return c.setupLogger(cmd)
}

func (c *cli) setupLogger(cmd *cobra.Command) error {
	level, err := log.ParseLogLevel(c.config.Logs.Level)
	if err != nil {
		return errUtils.Build(err).
			WithHint("Supported log levels are Trace, Debug, Info, Warning, Off").
			WithContext("level", c.config.Logs.Level).
			WithExitCode(2).
			Err()
	}

	logger, err := log.NewLogger(level.Level(), c.config.Logs.File)
	if err != nil {
		return err
	}
	c.logger = logger
	log.SetDefault(logger)

	log.Debug("Configured logging", "level", c.config.Logs.Level, "file", c.config.Logs.File, "command", cmd.CommandPath())
	return nil
}

func (c *cli) close() error {
	if c.logger == nil {
		return nil
	}
	logger := c.logger
	c.logger = nil
	log.SetDefault(log.New())
	return logger.Close()
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// terminalWidth returns the width of f, or fallback when f is not a terminal.
func terminalWidth(f any, fallback int) int {
	file, ok := f.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(file.Fd())
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
