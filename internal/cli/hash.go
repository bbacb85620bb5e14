package cli

import (
	"crypto/rand"
	"errors"
	"io"

	"github.com/Flyrell/ulidkit/internal/codec"
	"github.com/Flyrell/ulidkit/internal/hashutil"
	"github.com/spf13/cobra"
)

var binaryFlag = BoolFlag{Name: "binary", Shorthand: "b", Usage: "write raw bytes instead of hex"}

var lengthFlag = IntFlag{Name: "length", Shorthand: "l", Usage: "output length in bytes (1-1024)", Default: hashutil.DefaultLength}

func newHashCmd() *cobra.Command {
	return GroupCommand{
		Use:   "hash",
		Short: "Hash data or produce random bytes",
		Subcommands: []*cobra.Command{
			newDigestCmd("sha256", "SHA-256", func(data []byte, _ int) ([]byte, error) {
				return hashutil.SHA256(data), nil
			}, false),
			newDigestCmd("sha512", "SHA-512", func(data []byte, _ int) ([]byte, error) {
				return hashutil.SHA512(data), nil
			}, false),
			newDigestCmd("blake3", "BLAKE3", hashutil.Blake3, true),
			newHashRandomCmd(),
		},
	}.Build()
}

type digestFunc func(data []byte, length int) ([]byte, error)

func newDigestCmd(name, title string, digest digestFunc, variableLength bool) *cobra.Command {
	lc := LeafCommand{
		Use:       name + " [DATA]",
		Short:     "Compute the " + title + " digest of the argument or stdin",
		Example:   "  ulidkit hash " + name + " abc\n  cat file | ulidkit hash " + name,
		Args:      cobra.MaximumNArgs(1),
		BoolFlags: []BoolFlag{binaryFlag},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(cmd, args)
			if err != nil {
				return err
			}
			length := hashutil.DefaultLength
			if variableLength {
				length, _ = cmd.Flags().GetInt("length")
			}
			binary, _ := cmd.Flags().GetBool("binary")
			return runDigest(cmd, digest, data, length, binary)
		},
	}
	if variableLength {
		lc.IntFlags = []IntFlag{lengthFlag}
	}
	return lc.Build()
}

func runDigest(cmd *cobra.Command, digest digestFunc, data []byte, length int, binary bool) error {
	sum, err := digest(data, length)
	if err != nil {
		if errors.Is(err, hashutil.ErrInvalidLength) {
			return lengthError(err)
		}
		return withLabel("Hash failed", err)
	}
	return emitHash(cmd, sum, binary)
}

func newHashRandomCmd() *cobra.Command {
	return LeafCommand{
		Use:       "random",
		Short:     "Generate cryptographically secure random bytes",
		Example:   "  ulidkit hash random\n  ulidkit hash random --length 16 --binary > key.bin",
		Args:      cobra.NoArgs,
		BoolFlags: []BoolFlag{binaryFlag},
		IntFlags:  []IntFlag{lengthFlag},
		RunE: func(cmd *cobra.Command, args []string) error {
			length, _ := cmd.Flags().GetInt("length")
			binary, _ := cmd.Flags().GetBool("binary")
			return runHashRandom(cmd, rand.Reader, length, binary)
		},
	}.Build()
}

func runHashRandom(cmd *cobra.Command, r io.Reader, length int, binary bool) error {
	data, err := hashutil.Random(r, length)
	if err != nil {
		if errors.Is(err, hashutil.ErrInvalidLength) {
			return lengthError(err)
		}
		return withLabel("Random generation failed", err)
	}
	return emitHash(cmd, data, binary)
}

func lengthError(err error) error {
	return &LabeledError{Title: "Invalid length", Message: err.Error(), Help: "the default is 32 bytes"}
}

func emitHash(cmd *cobra.Command, sum []byte, binary bool) error {
	if binary {
		return writeBytes(cmd, sum)
	}
	return render(cmd, codec.EncodeHex(sum, false))
}
