package cli

import (
	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return LeafCommand{
		Use:     "parse [ULID]",
		Short:   "Parse a ULID into its timestamp and randomness",
		Example: "  ulidkit parse 01AN4Z07BY79KA1307SR9X4MV3",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return runParse(cmd, input)
		},
	}.Build()
}

func runParse(cmd *cobra.Command, input string) error {
	c, err := engine.Parse(input)
	if err != nil {
		return engineError(err)
	}
	return render(cmd, c.Record())
}
