package cli

import (
	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return LeafCommand{
		Use:   "validate [ULID]",
		Short: "Check whether a string is a valid ULID",
		Long:  "Check whether a string is a valid ULID. Reads stdin when no argument is given.",
		Example: `  ulidkit validate 01AN4Z07BY79KA1307SR9X4MV3
  ulidkit validate not-a-ulid --detailed`,
		Args: cobra.MaximumNArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "detailed", Shorthand: "d", Usage: "report every rule the input violates"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, args)
			if err != nil {
				return err
			}
			detailed, _ := cmd.Flags().GetBool("detailed")
			return runValidate(cmd, input, detailed)
		},
	}.Build()
}

func runValidate(cmd *cobra.Command, input string, detailed bool) error {
	if detailed {
		return render(cmd, engine.ValidateDetailed(input).Record())
	}
	return render(cmd, engine.Validate(input))
}
