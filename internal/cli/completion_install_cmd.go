package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newCompletionInstallCmd() *cobra.Command {
	return LeafCommand{
		Use:       "install [SHELL]",
		Short:     "Install shell completions into your shell config",
		Example:   "  ulidkit completion install\n  ulidkit completion install fish --yes",
		Args:      cobra.RangeArgs(0, 1),
		ValidArgs: validShells,
		BoolFlags: []BoolFlag{
			{Name: "yes", Shorthand: "y", Usage: "skip the confirmation prompt"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := shellFromArgs(args)
			if err != nil {
				return err
			}
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return withLabel("Home directory unavailable", err)
			}
			yes, _ := cmd.Flags().GetBool("yes")
			return runCompletionInstall(cmd, shell, homeDir, ResolveConfirmFunc(yes, cmd.InOrStdin(), cmd.ErrOrStderr()))
		},
	}.Build()
}

func runCompletionInstall(cmd *cobra.Command, shell, homeDir string, confirm ConfirmFunc) error {
	target, ok := shellTargets[shell]
	if !ok {
		return unsupportedShell(shell)
	}
	display := filepath.Join("~", target.rcFile)

	if isCompletionInstalled(shell, homeDir) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text(fmt.Sprintf("shell completions already installed for %s in %s", Primary(shell), Primary(display))))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Install shell completions for %s into %s?", shell, display))
	if err != nil {
		return withLabel("Confirmation failed", err)
	}
	if !ok {
		return nil
	}

	if err := installCompletion(shell, homeDir); err != nil {
		return withLabel("Completion install failed", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Text(fmt.Sprintf("shell completions installed for %s in %s", Primary(shell), Primary(display))))
	return nil
}
