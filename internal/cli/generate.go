package cli

import (
	"fmt"

	"github.com/Flyrell/ulidkit/internal/engine"
	"github.com/Flyrell/ulidkit/internal/logging"
	"github.com/Flyrell/ulidkit/internal/security"
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

const (
	ulidFormatString = "string"
	ulidFormatJSON   = "json"
	ulidFormatBinary = "binary"
)

type generateOptions struct {
	// count is nil when a single ULID was requested.
	count     *int
	timestamp *uint64
	format    string
	context   string
	monotonic bool
}

func newGenerateCmd() *cobra.Command {
	return LeafCommand{
		Use:   "generate",
		Short: "Generate ULIDs",
		Long:  "Generate one or more ULIDs.\n\n" + security.CommandWarning,
		Example: `  ulidkit generate
  ulidkit generate --count 5
  ulidkit generate --format json
  ulidkit generate --timestamp 1640995200000
  ulidkit generate --count 3 --monotonic`,
		Args: cobra.NoArgs,
		IntFlags: []IntFlag{
			{Name: "count", Shorthand: "c", Usage: "number of ULIDs to generate (returns a list)"},
			{Name: "timestamp", Shorthand: "t", Usage: "unix timestamp in milliseconds"},
		},
		StrFlags: []StringFlag{
			{Name: "format", Shorthand: "f", Usage: "ULID format: string, json or binary", Default: ulidFormatString},
			{Name: "context", Usage: "describe the intended use to get a security check"},
		},
		BoolFlags: []BoolFlag{
			{Name: "monotonic", Shorthand: "m", Usage: "increment randomness within the same millisecond"},
			{Name: "yes", Shorthand: "y", Usage: "skip the security confirmation prompt"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := generateOptionsFrom(cmd)
			if err != nil {
				return err
			}
			yes, _ := cmd.Flags().GetBool("yes")
			confirm := ResolveConfirmFunc(yes, cmd.InOrStdin(), cmd.ErrOrStderr())
			return runGenerate(cmd, newEngine(cmd), opts, confirm)
		},
	}.Build()
}

func generateOptionsFrom(cmd *cobra.Command) (generateOptions, error) {
	var opts generateOptions
	if cmd.Flags().Changed("count") {
		count, _ := cmd.Flags().GetInt("count")
		if count < 0 {
			return opts, newLabeledError("Invalid count", "Count must be positive")
		}
		opts.count = &count
	}
	if cmd.Flags().Changed("timestamp") {
		ts, _ := cmd.Flags().GetInt("timestamp")
		if ts < 0 {
			return opts, newLabeledError("Invalid timestamp", "Timestamp must not be negative")
		}
		ms := uint64(ts)
		opts.timestamp = &ms
	}
	opts.format, _ = cmd.Flags().GetString("format")
	opts.context, _ = cmd.Flags().GetString("context")
	opts.monotonic, _ = cmd.Flags().GetBool("monotonic")
	return opts, nil
}

func runGenerate(cmd *cobra.Command, eng *engine.Engine, opts generateOptions, confirm ConfirmFunc) error {
	log := logging.Ctx(cmd.Context())

	switch opts.format {
	case ulidFormatString, ulidFormatJSON, ulidFormatBinary:
	default:
		return newLabeledError("Invalid format", "Unknown format '%s'. Use 'string', 'json', or 'binary'", opts.format)
	}

	if opts.context != "" && security.IsSensitive(opts.context) {
		log.Warn().
			Str("context", opts.context).
			Str("rating", security.Rate(opts.context).String()).
			Msg("ULID requested for a security-sensitive context")
		ok, err := confirm(fmt.Sprintf("'%s' looks security-sensitive. Generate ULIDs anyway?", opts.context))
		if err != nil {
			return withLabel("Confirmation failed", err)
		}
		if !ok {
			return render(cmd, security.ContextWarning(opts.context))
		}
	}

	if opts.count == nil {
		var id ulid.ULID
		var err error
		if opts.timestamp != nil {
			id, err = eng.GenerateWithTimestamp(*opts.timestamp)
		} else {
			id, err = eng.Generate()
		}
		if err != nil {
			return engineError(err)
		}
		return emitULIDs(cmd, []ulid.ULID{id}, opts.format, true)
	}

	if security.ShouldWarn("generate count", opts.context) {
		log.Info().Int("count", *opts.count).Msg("bulk ULID generation: ULIDs are not suitable for security-sensitive identifiers")
	}

	ids, err := eng.GenerateMany(engine.BulkRequest{
		Count:     *opts.count,
		Timestamp: opts.timestamp,
		Monotonic: opts.monotonic,
	})
	if err != nil {
		return engineError(err)
	}
	return emitULIDs(cmd, ids, opts.format, false)
}

// emitULIDs renders ids in the requested ULID format. A single ULID is
// rendered as a scalar, anything else as a list.
func emitULIDs(cmd *cobra.Command, ids []ulid.ULID, format string, single bool) error {
	switch format {
	case ulidFormatBinary:
		data := make([]byte, 0, len(ids)*16)
		for _, id := range ids {
			data = append(data, id[:]...)
		}
		return writeBytes(cmd, data)
	case ulidFormatJSON:
		records := make([]value.Record, len(ids))
		for i, id := range ids {
			records[i] = engine.ComponentsOf(id).Compact()
		}
		if single {
			return render(cmd, records[0])
		}
		return render(cmd, records)
	default:
		strs := make([]string, len(ids))
		for i, id := range ids {
			strs[i] = id.String()
		}
		if single {
			return render(cmd, strs[0])
		}
		return render(cmd, strs)
	}
}
