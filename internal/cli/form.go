package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
)

// interactive reports whether r is a terminal we can prompt on.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
	if !interactive(os.Stdin) {
		form = form.WithAccessible(true)
	}
	return form
}

// addForm collects the fields of a new item.
type addForm struct {
	Text     string
	Notes    string
	Category string
	Priority string
	Due      string
}

func (f *addForm) run(labels []string) error {
	cats := []huh.Option[string]{huh.NewOption(category.Uncategorized, "")}
	for _, l := range labels {
		cats = append(cats, huh.NewOption(l, l))
	}
	prios := []huh.Option[string]{huh.NewOption("None", "")}
	for _, p := range model.Priorities {
		prios = append(prios, huh.NewOption(p.Label(), string(p)))
	}

	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to do?").
				Value(&f.Text).
				Validate(huh.ValidateNotEmpty()),
			huh.NewText().
				Title("Notes").
				Value(&f.Notes),
			huh.NewSelect[string]().
				Title("Category").
				Options(cats...).
				Value(&f.Category),
			huh.NewSelect[string]().
				Title("Priority").
				Options(prios...).
				Value(&f.Priority),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD or e.g. \"next friday\"; leave empty for none").
				Value(&f.Due),
		),
	).Run()
}

func confirm(title string) (bool, error) {
	yes := false
	err := newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Keep").
				Value(&yes),
		),
	).Run()
	return yes, err
}
