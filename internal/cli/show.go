package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/reorder"
	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/ui"
)

func addShow(topLevel *cobra.Command, e *env) {
	var raw bool
	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show one item with its notes",
		Example: "\nbucket show 3f2a\n",
		Args:    exactArgs(1, "show <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closer, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()

			id, err := resolveID(s.All(), args[0])
			if err != nil {
				return err
			}
			it, _ := s.Get(id)
			return printItem(cmd.OutOrStdout(), s, it, raw || e.noColor)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print notes without markdown rendering")
	topLevel.AddCommand(cmd)
}

func printItem(w io.Writer, s *store.Store, it model.Item, raw bool) error {
	t := ui.Current()
	k, count, _ := reorder.Position(s.All(), it.ID)

	box := t.BoxUnchecked
	if it.Completed {
		box = t.BoxChecked
	}
	lines := []string{
		t.Title.Render(box + " " + it.Text),
		"",
		fmt.Sprintf("%s %s", t.Muted.Render("id:      "), it.ID),
		fmt.Sprintf("%s %s (%d of %d)", t.Muted.Render("group:   "), category.GroupOf(it), k+1, count),
	}
	if it.Priority != model.PriorityNone {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render("priority:"), it.Priority.Label()))
	}
	if !it.DueDate.IsZero() {
		lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render("due:     "), it.DueDate.Display()))
	}
	lines = append(lines, fmt.Sprintf("%s %s", t.Muted.Render("created: "), it.Created.Local().Format("Jan 2, 2006 15:04")))
	fmt.Fprintln(w, strings.Join(lines, "\n"))

	if strings.TrimSpace(it.Notes) == "" {
		return nil
	}
	fmt.Fprintln(w)
	if raw {
		fmt.Fprintln(w, it.Notes)
		return nil
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(it.Notes)
	if err != nil {
		return fmt.Errorf("render notes: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}
