package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/ui"
)

func addAdd(topLevel *cobra.Command, e *env) {
	f := &addForm{}
	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add an item to the top of the list",
		Long:  "Add an item to the top of the list and save the list.\n" + loadNote,
		Example: `
bucket add "Cycle the Danube" -c Bike -p high --due 2027-06-01
bucket add Learn to juggle --category Learning --due "next friday"
bucket add            # opens a form when run in a terminal
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.Text = strings.Join(args, " ")
			if strings.TrimSpace(f.Text) == "" {
				if !interactive(e.in) {
					return usagef("usage: bucket add <text...>")
				}
				if err := f.run(e.cfg.Categories); err != nil {
					return err
				}
			}
			fields, err := f.fields(e.now())
			if err != nil {
				return err
			}

			s, closer, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()

			it, err := s.Add(cmd.Context(), fields)
			if err != nil {
				return err
			}
			if err := saved(s); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("added %s %s", shortID(it.ID), it.Text))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Notes, "notes", "", "free-form notes (markdown)")
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "category label")
	cmd.Flags().StringVarP(&f.Priority, "priority", "p", "", "priority: low, medium or high")
	cmd.Flags().StringVar(&f.Due, "due", "", `due date: YYYY-MM-DD or a phrase like "next friday"`)
	topLevel.AddCommand(cmd)
}

func (f *addForm) fields(now time.Time) (model.Fields, error) {
	prio, err := model.ParsePriority(f.Priority)
	if err != nil {
		return model.Fields{}, err
	}
	due, err := model.ParseDate(f.Due, now)
	if err != nil {
		return model.Fields{}, err
	}
	return model.Fields{
		Text:     f.Text,
		Notes:    f.Notes,
		Category: strings.TrimSpace(f.Category),
		Priority: prio,
		DueDate:  due,
	}, nil
}
