package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/view"
)

// StatsLine is the "Bucket ✔ 2 • 3 Total 5" header.
func StatsLine(title string, st store.Stats) string {
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render(title),
		current.Success.Render(current.SymDone), st.Completed,
		current.Pending.Render(current.SymPending), st.Remaining,
		current.Accent.Render("Total"), st.Total,
	)
}

// Header renders a section header: arrow, label and count.
func Header(sec view.Section) string {
	arrow := current.Collapsed
	if sec.Expanded {
		arrow = current.Expanded
	}
	return fmt.Sprintf("%s %s %s",
		current.Muted.Render(arrow),
		current.Header.Render(sec.Label),
		current.Count.Render(fmt.Sprintf("(%d)", sec.Count)))
}

// Row renders an item line, followed by its notes when showNotes is set.
func Row(r view.Row, showNotes bool) string {
	box := current.Muted.Render(current.BoxUnchecked)
	text := r.Text
	if r.Completed {
		box = current.Success.Render(current.BoxChecked)
		text = current.Done.Render(text)
	}
	parts := []string{box, text}
	for _, b := range r.Badges {
		parts = append(parts, Badge(b))
	}
	if r.Notes != "" && !showNotes {
		parts = append(parts, current.Muted.Render("…"))
	}
	line := strings.Join(parts, " ")
	if showNotes && r.Notes != "" {
		for _, n := range strings.Split(r.Notes, "\n") {
			line += "\n    " + current.Notes.Render(n)
		}
	}
	return line
}

func Badge(b view.Badge) string {
	switch b.Kind {
	case view.BadgeDue:
		return current.Date.Render("[" + b.Text + "]")
	default:
		st, ok := current.Priority[b.Class]
		if !ok {
			st = current.Muted
		}
		return st.Render("[" + b.Text + "]")
	}
}

// TreeLines renders a whole tree for non-interactive output.
func TreeLines(t view.Tree, showNotes bool) []string {
	if t.Empty {
		return []string{current.Muted.Render("No items yet. Add one to get started")}
	}
	var lines []string
	for i, sec := range t.Sections {
		if i > 0 && len(t.Sections[i-1].Rows) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Header(sec))
		for _, r := range sec.Rows {
			lines = append(lines, "  "+strings.ReplaceAll(Row(r, showNotes), "\n", "\n  "))
		}
	}
	return lines
}
