package cli

import (
	"time"

	"github.com/Flyrell/ulidkit/internal/timeconv"
	"github.com/spf13/cobra"
)

func newTimeCmd() *cobra.Command {
	return GroupCommand{
		Use:   "time",
		Short: "Convert between timestamp representations",
		Subcommands: []*cobra.Command{
			newTimeNowCmd(),
			newTimeParseCmd(),
			newTimeMillisCmd(),
		},
	}.Build()
}

func newTimeNowCmd() *cobra.Command {
	return LeafCommand{
		Use:   "now",
		Short: "Print the current time",
		Example: `  ulidkit time now
  ulidkit time now --format millis`,
		Args: cobra.NoArgs,
		StrFlags: []StringFlag{
			{Name: "format", Shorthand: "f", Usage: "iso8601, rfc3339, millis or seconds", Default: timeconv.FormatISO8601},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return runTimeNow(cmd, format, time.Now())
		},
	}.Build()
}

func runTimeNow(cmd *cobra.Command, format string, now time.Time) error {
	v, err := timeconv.Format(now, format)
	if err != nil {
		return withLabel("Invalid format", err)
	}
	return render(cmd, v)
}

func newTimeParseCmd() *cobra.Command {
	return LeafCommand{
		Use:   "parse [TIMESTAMP]",
		Short: "Break a timestamp down into its parts",
		Long: `Break a timestamp down into its parts. Accepts RFC 3339 text or a unix
timestamp; numbers above 10^12 are milliseconds, anything else seconds.`,
		Example: `  ulidkit time parse 2024-01-01T00:00:00Z
  ulidkit time parse 1704067200000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return runTimeParse(cmd, input)
		},
	}.Build()
}

func runTimeParse(cmd *cobra.Command, input string) error {
	t, err := timeconv.Parse(input)
	if err != nil {
		return withLabel("Failed to parse timestamp", err)
	}
	return render(cmd, timeconv.Explain(t).Record())
}

func newTimeMillisCmd() *cobra.Command {
	return LeafCommand{
		Use:   "millis [TIMESTAMP]",
		Short: "Convert a timestamp to unix milliseconds (now when omitted)",
		Example: `  ulidkit time millis
  ulidkit time millis 2024-01-01T00:00:00Z`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			return runTimeMillis(cmd, input, time.Now())
		},
	}.Build()
}

func runTimeMillis(cmd *cobra.Command, input string, now time.Time) error {
	ms, err := timeconv.Millis(input, now)
	if err != nil {
		return withLabel("Failed to parse timestamp", err)
	}
	return render(cmd, ms)
}
