package cli

import (
	"github.com/Flyrell/ulidkit/internal/security"
	"github.com/spf13/cobra"
)

func newSecurityAdviceCmd() *cobra.Command {
	return LeafCommand{
		Use:   "security-advice",
		Short: "Show security guidance for ULID usage",
		Example: `  ulidkit security-advice
  ulidkit security-advice --context "password reset token"`,
		Args: cobra.NoArgs,
		StrFlags: []StringFlag{
			{Name: "context", Usage: "rate a specific use case before showing the guidance"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			context, _ := cmd.Flags().GetString("context")
			return runSecurityAdvice(cmd, context)
		},
	}.Build()
}

func runSecurityAdvice(cmd *cobra.Command, context string) error {
	if context == "" {
		return render(cmd, security.Advice())
	}
	return render(cmd, security.ContextRating(context).Add("guidance", security.Advice()))
}
