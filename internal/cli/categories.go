package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/bucket/internal/category"
)

func addCategories(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories and how many items each holds",
		Args:  exactArgs(0, "categories"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closer, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()

			counts := map[string]int{}
			for _, g := range s.Groups() {
				counts[g.Label] = len(g.Items)
			}
			tbl := uitable.New()
			tbl.Separator = "  "
			for _, l := range append(s.Labels(), category.Uncategorized) {
				tbl.AddRow(l, counts[l])
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
