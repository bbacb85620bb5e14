package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const completionMarker = "ulidkit completion"

// shellTarget is where completions are installed for one shell.
type shellTarget struct {
	// rcFile is relative to the home directory.
	rcFile   string
	evalLine string
}

var shellTargets = map[string]shellTarget{
	"bash":       {".bashrc", `eval "$(ulidkit completion generate bash)"`},
	"zsh":        {".zshrc", `eval "$(ulidkit completion generate zsh)"`},
	"fish":       {".config/fish/config.fish", `ulidkit completion generate fish | source`},
	"powershell": {".config/powershell/Microsoft.PowerShell_profile.ps1", `ulidkit completion generate powershell | Out-String | Invoke-Expression`},
}

// detectShell maps $SHELL to a supported shell name, or "".
func detectShell() string {
	switch base := filepath.Base(os.Getenv("SHELL")); base {
	case "bash", "zsh", "fish":
		return base
	case "pwsh", "pwsh.exe", "powershell", "powershell.exe":
		return "powershell"
	}
	return ""
}

// isCompletionInstalled reports whether the shell's rc file already sources
// ulidkit completions.
func isCompletionInstalled(shell, homeDir string) bool {
	target, ok := shellTargets[shell]
	if !ok {
		return false
	}
	data, err := os.ReadFile(filepath.Join(homeDir, target.rcFile))
	return err == nil && strings.Contains(string(data), completionMarker)
}

// installCompletion appends the completion line to the shell's rc file.
// Installing twice is a no-op.
func installCompletion(shell, homeDir string) error {
	target, ok := shellTargets[shell]
	if !ok {
		return fmt.Errorf("unsupported shell for completion install: %s", shell)
	}
	if isCompletionInstalled(shell, homeDir) {
		return nil
	}

	path := filepath.Join(homeDir, target.rcFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	_, writeErr := fmt.Fprintf(f, "\n# ulidkit shell completion\n%s\n", target.evalLine)
	if closeErr := f.Close(); closeErr != nil {
		return closeErr
	}
	return writeErr
}
