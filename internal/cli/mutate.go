package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/reorder"
	"github.com/idilsaglam/bucket/internal/ui"
)

func addDone(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Short:   "Toggle completion of an item",
		Long:    "Toggle completion of an item and save the list.\n" + loadNote,
		Example: "\nbucket done 3f2a\n",
		Args:    exactArgs(1, "done <id>"),
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
			it, err := s.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := saved(s); err != nil {
				return err
			}
			state := "reopened"
			if it.Completed {
				state = "completed"
			}
			ui.OK(state + ": " + it.Text)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "edit <id> <text...>",
		Short:   "Replace the text of an item",
		Long:    "Replace the text of an item and save the list.\n" + loadNote,
		Example: "\nbucket edit 3f2a Cycle the whole Danube\n",
		Args:    minArgs(2, "edit <id> <text...>"),
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
			it, err := s.EditText(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if err := saved(s); err != nil {
				return err
			}
			ui.OK("edited: " + it.Text)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command, e *env) {
	var yes bool
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Long:    "Delete an item and save the list.\n" + loadNote,
		Example: "\nbucket rm 3f2a\nbucket rm 3f2a --yes\n",
		Args:    exactArgs(1, "rm <id>"),
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
			if !yes {
				if !interactive(e.in) {
					return usagef("rm: refusing to delete without --yes when not on a terminal")
				}
				it, _ := s.Get(id)
				ok, err := confirm(fmt.Sprintf("Delete %q?", it.Text))
				if err != nil {
					return err
				}
				if !ok {
					ui.Warn("kept")
					return nil
				}
			}
			it, err := s.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := saved(s); err != nil {
				return err
			}
			ui.OK("removed: " + it.Text)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "move <id> <position>",
		Short: "Move an item to a position within its category",
		Long: `Move an item to a 1-based position among the items of its own category.
Positions past the end move the item to the bottom of its group. Items of
other categories keep their order.
` + loadNote,
		Example: "\nbucket move 3f2a 1\n",
		Args:    exactArgs(2, "move <id> <position>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[1])
			if err != nil || pos < 1 {
				return usagef("move: position must be a number >= 1, got %q", args[1])
			}

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
			if _, err := s.Move(cmd.Context(), reorder.Drop{ID: id, Category: it.Category, Index: pos - 1}); err != nil {
				return err
			}
			if err := saved(s); err != nil {
				return err
			}
			k, count, _ := reorder.Position(s.All(), id)
			ui.OK(fmt.Sprintf("moved %q to %d/%d in %s", it.Text, k+1, count, category.GroupOf(it)))
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
