package cli

import (
	"github.com/Flyrell/ulidkit/internal/stream"
	"github.com/spf13/cobra"
)

func newStreamCmd() *cobra.Command {
	return LeafCommand{
		Use:   "stream OPERATION [ITEM...]",
		Short: "Apply an operation to a list of ULIDs or records in batches",
		Long: `Apply validate, parse, extract-timestamp or transform to every item.

Items come from the arguments after the operation, or from stdin as a JSON
list or one ULID per line. Records are read from the first of the ulid, id,
identifier or uuid fields. Output order always matches input order.`,
		Example: `  ulidkit stream validate < ids.txt
  ulidkit stream parse --output-format compact --parallel < ids.txt
  echo '[{"id":"01AN4Z07BY79KA1307SR9X4MV3"}]' | ulidkit stream extract-timestamp`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{string(stream.OpValidate), string(stream.OpParse), string(stream.OpExtractTimestamp), string(stream.OpTransform)},
		IntFlags: []IntFlag{
			{Name: "batch-size", Shorthand: "b", Usage: "items per batch (default from config, 1000)"},
			{Name: "workers", Shorthand: "w", Usage: "parallel workers (default from config, number of CPUs)"},
		},
		StrFlags: []StringFlag{
			{Name: "output-format", Shorthand: "f", Usage: "full, compact or timestamp-only", Default: string(stream.FormatFull)},
		},
		BoolFlags: []BoolFlag{
			{Name: "parallel", Shorthand: "p", Usage: "process chunks of each batch concurrently"},
			{Name: "continue-on-error", Shorthand: "c", Usage: "replace failing items with {error, input} instead of aborting"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := stream.ParseOperation(args[0])
			if err != nil {
				return withLabel("Invalid operation", err)
			}
			format, _ := cmd.Flags().GetString("output-format")
			f, err := stream.ParseFormat(format)
			if err != nil {
				return withLabel("Invalid format", err)
			}
			items, err := readItems(cmd, args[1:])
			if err != nil {
				return err
			}

			cfg := settingsFrom(cmd).cfg
			opts := stream.Options{
				Operation: op,
				Format:    f,
				BatchSize: cfg.Stream.BatchSize,
				Workers:   cfg.Stream.Workers,
			}
			if cmd.Flags().Changed("batch-size") {
				opts.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers, _ = cmd.Flags().GetInt("workers")
			}
			opts.Parallel, _ = cmd.Flags().GetBool("parallel")
			opts.ContinueOnError, _ = cmd.Flags().GetBool("continue-on-error")
			return runStream(cmd, items, opts)
		},
	}.Build()
}

func runStream(cmd *cobra.Command, items []any, opts stream.Options) error {
	if opts.BatchSize < 1 {
		return newLabeledError("Invalid batch size", "batch size must be at least 1, got %d", opts.BatchSize)
	}
	results, err := stream.Process(cmd.Context(), items, opts)
	if err != nil {
		return withHelp(withLabel("Stream processing failed", err), "use --continue-on-error to keep going past bad items")
	}
	return render(cmd, results)
}
