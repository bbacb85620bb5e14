package cli

import (
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/spf13/cobra"
)

const (
	appName        = "ulidkit"
	appDescription = "ULID and UUID toolkit: generation, parsing, validation, sorting, hashing, encoding and time conversion"
	appLicense     = "MIT"
	appRepository  = "https://github.com/Flyrell/ulidkit"
)

func newInfoCmd() *cobra.Command {
	return LeafCommand{
		Use:   "info",
		Short: "Show build and configuration information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd)
		},
	}.Build()
}

func runInfo(cmd *cobra.Command) error {
	cfg := settingsFrom(cmd).cfg
	configFile := cfg.File
	if configFile == "" {
		configFile = "none"
	}
	return render(cmd, value.New(
		"name", appName,
		"version", appVersion,
		"commit", appCommit,
		"built", appDate,
		"description", appDescription,
		"license", appLicense,
		"repository", appRepository,
		"bulk_limit", cfg.Limits.Bulk,
		"stream_limit", cfg.Limits.Stream,
		"config_file", configFile,
	))
}
