package cli

import (
	"errors"
	"strconv"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/stream"
	"github.com/spf13/cobra"
)

func newGenerateStreamCmd() *cobra.Command {
	return LeafCommand{
		Use:   "generate-stream COUNT",
		Short: "Generate large numbers of ULIDs in batches",
		Example: `  ulidkit generate-stream 50000 > ids.txt
  ulidkit generate-stream 100 --timestamp 1640995200000 --unique-timestamps`,
		Args: cobra.ExactArgs(1),
		IntFlags: []IntFlag{
			{Name: "batch-size", Shorthand: "b", Usage: "ULIDs per batch (default from config, 1000)"},
			{Name: "timestamp", Shorthand: "t", Usage: "base unix timestamp in milliseconds"},
		},
		BoolFlags: []BoolFlag{
			{Name: "unique-timestamps", Shorthand: "u", Usage: "advance the base timestamp by one millisecond per ULID"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return newLabeledError("Invalid count", "'%s' is not a number", args[0])
			}

			cfg := settingsFrom(cmd).cfg
			opts := stream.GenerateOptions{
				BatchSize: cfg.Stream.BatchSize,
				Limit:     cfg.Limits.Stream,
			}
			if cmd.Flags().Changed("batch-size") {
				opts.BatchSize, _ = cmd.Flags().GetInt("batch-size")
			}
			if cmd.Flags().Changed("timestamp") {
				ts, _ := cmd.Flags().GetInt("timestamp")
				if ts < 0 {
					return newLabeledError("Invalid timestamp", "Timestamp must not be negative")
				}
				ms := uint64(ts)
				opts.Timestamp = &ms
			}
			opts.UniqueTimestamps, _ = cmd.Flags().GetBool("unique-timestamps")
			return runGenerateStream(cmd, newEngine(cmd), count, opts)
		},
	}.Build()
}

func runGenerateStream(cmd *cobra.Command, eng *engine.Engine, count int, opts stream.GenerateOptions) error {
	if count < 0 {
		return newLabeledError("Invalid count", "Count must be positive")
	}
	if opts.BatchSize < 1 {
		return newLabeledError("Invalid batch size", "batch size must be at least 1, got %d", opts.BatchSize)
	}
	ids, err := stream.Generate(cmd.Context(), eng, count, opts)
	if err != nil {
		var input *engine.InvalidInputError
		if errors.As(err, &input) {
			return newLabeledError("Count too large", "%s", input.Message)
		}
		return engineError(err)
	}
	return render(cmd, ids)
}
