package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/ui"
	"github.com/idilsaglam/bucket/internal/view"
)

type listOptions struct {
	Flat      bool
	Collapsed bool
	Notes     bool
	Output    string
}

func addList(topLevel *cobra.Command, e *env) {
	o := &listOptions{}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items grouped by category",
		Long:    "List items grouped by category, in display order.\n" + loadNote,
		Example: `
bucket ls
bucket ls --collapsed
bucket ls --flat
bucket ls -o yaml
`,
		Args: exactArgs(0, "ls [flags]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closer, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()
			return printList(cmd.OutOrStdout(), s, *o)
		},
	}
	cmd.Flags().BoolVar(&o.Flat, "flat", false, "print the raw sequence as a table")
	cmd.Flags().BoolVar(&o.Collapsed, "collapsed", false, "only print group headers with counts")
	cmd.Flags().BoolVar(&o.Notes, "notes", false, "print notes under each item")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "text", "output format: text, json or yaml")
	topLevel.AddCommand(cmd)
}

func printList(w io.Writer, s *store.Store, o listOptions) error {
	switch strings.ToLower(o.Output) {
	case "json":
		b, err := json.MarshalIndent(nonNil(s.All()), "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(nonNil(s.All()))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = fmt.Fprint(w, string(b))
		return err
	case "text", "":
	default:
		return usagef("ls: unknown output %q (want text, json or yaml)", o.Output)
	}

	if o.Flat {
		fmt.Fprintln(w, flatTable(s.All()))
		return nil
	}

	st := s.Stats()
	groups := s.Groups()
	expanded := view.All(groups)
	if o.Collapsed {
		expanded = view.Expansion{}
	}
	tree := view.Project(groups, expanded)

	var lines []string
	lines = append(lines, ui.StatsLine("Bucket", st))
	lines = append(lines, ui.Current().Muted.Render(ui.ProgressBar(st.Completed, st.Total, 28)))
	lines = append(lines, "")
	lines = append(lines, ui.TreeLines(tree, o.Notes)...)
	lines = append(lines, "")
	lines = append(lines, ui.Current().Muted.Render("Tip: add with `bucket add \"See the northern lights\" -c Travel`"))
	ui.Panel(lines)
	return nil
}

func flatTable(items []model.Item) string {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("#", "ID", "", "TEXT", "GROUP", "PRIORITY", "DUE")
	for i, it := range items {
		box := ui.Current().BoxUnchecked
		if it.Completed {
			box = ui.Current().BoxChecked
		}
		tbl.AddRow(i+1, shortID(it.ID), box, it.Text, category.GroupOf(it), it.Priority.Label(), it.DueDate.String())
	}
	return tbl.String()
}

func nonNil(items []model.Item) []model.Item {
	if items == nil {
		return []model.Item{}
	}
	return items
}
