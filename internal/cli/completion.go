package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionCmd() *cobra.Command {
	return GroupCommand{
		Use:   "completion",
		Short: "Manage shell completions",
		Subcommands: []*cobra.Command{
			newCompletionGenerateCmd(),
			newCompletionInstallCmd(),
		},
	}.Build()
}

func newCompletionGenerateCmd() *cobra.Command {
	return LeafCommand{
		Use:   "generate [SHELL]",
		Short: "Generate shell completion script",
		Example: `  ulidkit completion generate zsh > ~/.zfunc/_ulidkit
  eval "$(ulidkit completion generate bash)"`,
		Args:      cobra.RangeArgs(0, 1),
		ValidArgs: validShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell, err := shellFromArgs(args)
			if err != nil {
				return err
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
}

// shellFromArgs returns the explicit shell argument or the one detected
// from $SHELL.
func shellFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if shell := detectShell(); shell != "" {
		return shell, nil
	}
	return "", &LabeledError{
		Title:   "Unknown shell",
		Message: "could not detect shell from $SHELL environment variable",
		Help:    "specify one explicitly: " + strings.Join(validShells, ", "),
	}
}

func unsupportedShell(shell string) error {
	return newLabeledError("Unsupported shell", "unsupported shell: %s (valid: %s)", shell, strings.Join(validShells, ", "))
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(out)
	default:
		return unsupportedShell(shell)
	}
}
