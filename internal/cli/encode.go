package cli

import (
	"unicode/utf8"

	"github.com/Flyrell/ulidkit/internal/codec"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	return GroupCommand{
		Use:   "encode",
		Short: "Encode data as Crockford Base32 or hex",
		Subcommands: []*cobra.Command{
			LeafCommand{
				Use:     "base32 [DATA]",
				Short:   "Encode data as Crockford Base32",
				Example: "  ulidkit encode base32 hello\n  cat file.bin | ulidkit encode base32",
				Args:    cobra.MaximumNArgs(1),
				RunE: func(cmd *cobra.Command, args []string) error {
					data, err := readData(cmd, args)
					if err != nil {
						return err
					}
					return render(cmd, codec.EncodeBase32(data))
				},
			}.Build(),
			LeafCommand{
				Use:     "hex [DATA]",
				Short:   "Encode data as hex",
				Example: "  ulidkit encode hex hello --uppercase",
				Args:    cobra.MaximumNArgs(1),
				BoolFlags: []BoolFlag{
					{Name: "uppercase", Shorthand: "u", Usage: "use uppercase hex digits"},
				},
				RunE: func(cmd *cobra.Command, args []string) error {
					data, err := readData(cmd, args)
					if err != nil {
						return err
					}
					upper, _ := cmd.Flags().GetBool("uppercase")
					return render(cmd, codec.EncodeHex(data, upper))
				},
			}.Build(),
		},
	}.Build()
}

func newDecodeCmd() *cobra.Command {
	textFlag := BoolFlag{Name: "text", Shorthand: "t", Usage: "print the decoded bytes as UTF-8 text"}
	return GroupCommand{
		Use:   "decode",
		Short: "Decode Crockford Base32 or hex data",
		Subcommands: []*cobra.Command{
			LeafCommand{
				Use:       "base32 [DATA]",
				Short:     "Decode Crockford Base32",
				Example:   "  ulidkit decode base32 D1JPRV3F --text",
				Args:      cobra.MaximumNArgs(1),
				BoolFlags: []BoolFlag{textFlag},
				RunE: func(cmd *cobra.Command, args []string) error {
					input, err := readText(cmd, args)
					if err != nil {
						return err
					}
					data, err := codec.DecodeBase32(input)
					if err != nil {
						return withLabel("Invalid Base32", err)
					}
					text, _ := cmd.Flags().GetBool("text")
					return emitDecoded(cmd, data, text)
				},
			}.Build(),
			LeafCommand{
				Use:       "hex [DATA]",
				Short:     "Decode hex",
				Example:   "  ulidkit decode hex 68656c6c6f --text",
				Args:      cobra.MaximumNArgs(1),
				BoolFlags: []BoolFlag{textFlag},
				RunE: func(cmd *cobra.Command, args []string) error {
					input, err := readText(cmd, args)
					if err != nil {
						return err
					}
					data, err := codec.DecodeHex(input)
					if err != nil {
						return withLabel("Invalid hex", err)
					}
					text, _ := cmd.Flags().GetBool("text")
					return emitDecoded(cmd, data, text)
				},
			}.Build(),
		},
	}.Build()
}

// emitDecoded writes decoded bytes raw, or as a rendered string when text is set.
func emitDecoded(cmd *cobra.Command, data []byte, text bool) error {
	if !text {
		return writeBytes(cmd, data)
	}
	if !utf8.Valid(data) {
		return newLabeledError("Invalid UTF-8", "Decoded data is not valid UTF-8 text")
	}
	return render(cmd, string(data))
}
