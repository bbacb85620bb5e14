package cli

import (
	"github.com/Flyrell/ulidkit/internal/altid"
	"github.com/Flyrell/ulidkit/internal/codec"
	"github.com/Flyrell/ulidkit/internal/value"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newUUIDCmd() *cobra.Command {
	return GroupCommand{
		Use:   "uuid",
		Short: "Generate, validate and parse UUIDs",
		Subcommands: []*cobra.Command{
			newUUIDGenerateCmd(),
			newUUIDValidateCmd(),
			newUUIDParseCmd(),
		},
	}.Build()
}

func newUUIDGenerateCmd() *cobra.Command {
	return LeafCommand{
		Use:   "generate",
		Short: "Generate random (v4) or time-ordered (v7) UUIDs",
		Example: `  ulidkit uuid generate
  ulidkit uuid generate --version 7 --count 3`,
		Args: cobra.NoArgs,
		IntFlags: []IntFlag{
			{Name: "version", Shorthand: "v", Usage: "UUID version: 4 or 7", Default: 4},
			{Name: "count", Shorthand: "c", Usage: "number of UUIDs to generate (returns a list)"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetInt("version")
			var count *int
			if cmd.Flags().Changed("count") {
				n, _ := cmd.Flags().GetInt("count")
				count = &n
			}
			return runUUIDGenerate(cmd, version, count)
		},
	}.Build()
}

func runUUIDGenerate(cmd *cobra.Command, version int, count *int) error {
	if version != 4 && version != 7 {
		return newLabeledError("Invalid version", "UUID version %d is not supported, use 4 or 7", version)
	}
	gen := altid.NewUUIDGenerator(version)

	if count == nil {
		id, err := gen.Generate()
		if err != nil {
			return withLabel("Generation failed", err)
		}
		return render(cmd, id)
	}

	if limit := settingsFrom(cmd).cfg.Limits.Bulk; *count > limit {
		return newLabeledError("Count too large", "Maximum count is %d", limit)
	}
	ids, err := gen.GenerateBatch(*count)
	if err != nil {
		return withLabel("Invalid count", err)
	}
	return render(cmd, ids)
}

func newUUIDValidateCmd() *cobra.Command {
	return LeafCommand{
		Use:     "validate [UUID]",
		Short:   "Check whether a string is a valid UUID",
		Example: "  ulidkit uuid validate 550e8400-e29b-41d4-a716-446655440000",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return runUUIDValidate(cmd, input)
		},
	}.Build()
}

func runUUIDValidate(cmd *cobra.Command, input string) error {
	_, err := uuid.Parse(input)
	return render(cmd, err == nil)
}

func newUUIDParseCmd() *cobra.Command {
	return LeafCommand{
		Use:     "parse [UUID]",
		Short:   "Parse a UUID into its components",
		Example: "  ulidkit uuid parse 550e8400-e29b-41d4-a716-446655440000",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readText(cmd, args)
			if err != nil {
				return err
			}
			return runUUIDParse(cmd, input)
		},
	}.Build()
}

func runUUIDParse(cmd *cobra.Command, input string) error {
	id, err := uuid.Parse(input)
	if err != nil {
		return newLabeledError("Invalid UUID", "Failed to parse UUID: %v", err)
	}

	r := value.New(
		"uuid", id.String(),
		"version", int(id.Version()),
		"variant", altid.VariantName(id.Variant()),
		"hyphenated", id.String(),
		"simple", codec.EncodeHex(id[:], false),
		"urn", id.URN(),
		"bytes", codec.EncodeHex(id[:], false),
	)
	if id.Version() == 7 {
		r = r.Add("timestamp_ms", altid.V7Millis(id))
	}
	return render(cmd, r)
}
