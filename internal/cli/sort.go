package cli

import (
	"github.com/Flyrell/ulidkit/internal/order"
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	return LeafCommand{
		Use:   "sort [ULID...]",
		Short: "Sort ULIDs or records by ULID timestamp",
		Long: `Sort ULIDs, or records holding a ULID in a column, by embedded timestamp.

Input comes from the arguments, or from stdin as a JSON list or one ULID per
line. Unparsable values sort first, values missing the column sort last.`,
		Example: `  ulidkit sort 01AN4Z07BZ79KA1307SR9X4MV4 01AN4Z07BY79KA1307SR9X4MV3
  echo '[{"id":"01AN4Z07BZ79KA1307SR9X4MV4"},{"id":"01AN4Z07BY79KA1307SR9X4MV3"}]' | ulidkit sort --column id
  ulidkit sort --reverse < ids.txt`,
		StrFlags: []StringFlag{
			{Name: "column", Shorthand: "c", Usage: "record column holding the ULID"},
		},
		BoolFlags: []BoolFlag{
			{Name: "reverse", Shorthand: "r", Usage: "sort in descending order (newest first)"},
			{Name: "natural", Shorthand: "n", Usage: "compare ULID strings instead of timestamps"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readItems(cmd, args)
			if err != nil {
				return err
			}
			column, _ := cmd.Flags().GetString("column")
			var opts order.Options
			opts.Reverse, _ = cmd.Flags().GetBool("reverse")
			opts.Natural, _ = cmd.Flags().GetBool("natural")
			return runSort(cmd, items, column, opts)
		},
	}.Build()
}

func runSort(cmd *cobra.Command, items []any, column string, opts order.Options) error {
	return render(cmd, order.Sort(cmd.Context(), items, order.FieldKey(column), opts))
}
