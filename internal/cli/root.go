package cli

import (
	"context"
	"fmt"

	"github.com/Flyrell/ulidkit/internal/config"
	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/logging"
	"github.com/spf13/cobra"
)

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ulidkit",
		Short: "ULID and UUID toolkit",
		Long: `ulidkit generates, parses, validates, sorts and inspects ULIDs, and ships
the hashing, encoding and time helpers that usually travel with them.

ULIDs are not suitable for security-sensitive identifiers. Run
'ulidkit security-advice' for details.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringP("output", "o", "", "output format: text, json or yaml (default from config, text)")
	cmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error or disabled")
	cmd.PersistentFlags().String("config", "", "config file or directory")
	cmd.SetHelpFunc(colorizedHelpFunc())

	cmd.AddCommand(
		newGenerateCmd(),
		newValidateCmd(),
		newParseCmd(),
		newInspectCmd(),
		newSortCmd(),
		newSecurityAdviceCmd(),
		newInfoCmd(),
		newVersionCmd(),
		newUUIDCmd(),
		newAltCmd(),
		newTimeCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newHashCmd(),
		newStreamCmd(),
		newGenerateStreamCmd(),
		newCompletionCmd(),
	)
	return cmd
}

// setup resolves configuration and attaches the logger and settings to the
// command context.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return withLabel("Invalid configuration", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		if !logging.ValidLevel(level) {
			return newLabeledError("Invalid log level", "'%s' is not a log level", level)
		}
		cfg.Log.Level = level
	}

	output := cfg.Output
	if o, _ := cmd.Flags().GetString("output"); o != "" {
		output = o
	}
	switch output {
	case formatText, formatJSON, formatYAML:
	default:
		return &LabeledError{
			Title:   "Invalid output format",
			Message: fmt.Sprintf("'%s' is not an output format", output),
			Help:    "use text, json or yaml",
		}
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Pretty: logging.IsTerminal(),
		Out:    cmd.ErrOrStderr(),
	})
	logger.Debug().
		Str("config_file", cfg.File).
		Str("output", output).
		Int("bulk_limit", cfg.Limits.Bulk).
		Msg("configuration loaded")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)
	ctx = withSettings(ctx, settings{cfg: cfg, output: output})
	cmd.SetContext(ctx)
	return nil
}

// newEngine returns an engine honouring the configured bulk limit.
func newEngine(cmd *cobra.Command) *engine.Engine {
	return engine.New(engine.WithBulkLimit(settingsFrom(cmd).cfg.Limits.Bulk))
}

// Execute runs the CLI and prints any error to stderr.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}
