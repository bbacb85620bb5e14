package cli

import (
	"time"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return LeafCommand{
		Use:   "inspect [ULID]",
		Short: "Show a detailed breakdown of a ULID",
		Example: `  ulidkit inspect 01AN4Z07BY79KA1307SR9X4MV3
  ulidkit inspect 01AN4Z07BY79KA1307SR9X4MV3 --stats
  ulidkit inspect 01AN4Z07BY79KA1307SR9X4MV3 --timestamp-only`,
		Args: cobra.MaximumNArgs(1),
		BoolFlags: []BoolFlag{
			{Name: "compact", Shorthand: "c", Usage: "collapse timestamp and randomness into single values"},
			{Name: "timestamp-only", Shorthand: "t", Usage: "show only the timestamp"},
			{Name: "stats", Shorthand: "s", Usage: "include bit layout and entropy statistics"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, args)
			if err != nil {
				return err
			}
			var opts engine.InspectOptions
			opts.Compact, _ = cmd.Flags().GetBool("compact")
			opts.TimestampOnly, _ = cmd.Flags().GetBool("timestamp-only")
			opts.Stats, _ = cmd.Flags().GetBool("stats")
			return runInspect(cmd, input, opts, time.Now())
		},
	}.Build()
}

func runInspect(cmd *cobra.Command, input string, opts engine.InspectOptions, now time.Time) error {
	c, err := engine.Parse(input)
	if err != nil {
		return engineError(err)
	}
	return render(cmd, c.Inspect(opts, now))
}
