// Package view projects the grouped item list onto a display tree. It holds
// no state and never touches the store; renderers walk the Tree it returns.
package view

import (
	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
)

type BadgeKind int

const (
	BadgePriority BadgeKind = iota
	BadgeDue
)

type Badge struct {
	Kind BadgeKind
	// Class is the style key: "priority-high", "date", ...
	Class string
	Text  string
}

type Action string

const (
	ActionToggle Action = "toggle"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionMove   Action = "move"
	ActionNotes  Action = "notes"
)

// Row is one item line.
type Row struct {
	ID        string
	Text      string
	Notes     string
	Completed bool
	Badges    []Badge
	Actions   []Action
}

// Section is a collapsible category header and, when expanded, its rows.
type Section struct {
	Label    string
	Count    int
	Expanded bool
	Rows     []Row
}

type Tree struct {
	Empty    bool
	Sections []Section
}

// Expansion is the set of expanded group labels.
type Expansion map[string]bool

func (e Expansion) Has(label string) bool { return e[label] }

func (e Expansion) Expand(label string) { e[label] = true }

// Toggle flips label and reports whether it is now expanded.
func (e Expansion) Toggle(label string) bool {
	if e[label] {
		delete(e, label)
		return false
	}
	e[label] = true
	return true
}

// All returns an Expansion with every group label expanded.
func All(groups []category.Group) Expansion {
	e := make(Expansion, len(groups))
	for _, g := range groups {
		e[g.Label] = true
	}
	return e
}

// Project builds the display tree for groups.
func Project(groups []category.Group, expanded Expansion) Tree {
	if len(groups) == 0 {
		return Tree{Empty: true}
	}
	t := Tree{Sections: make([]Section, 0, len(groups))}
	for _, g := range groups {
		sec := Section{
			Label:    g.Label,
			Count:    len(g.Items),
			Expanded: expanded.Has(g.Label),
		}
		if sec.Expanded {
			sec.Rows = make([]Row, 0, len(g.Items))
			for _, it := range g.Items {
				sec.Rows = append(sec.Rows, rowFor(it))
			}
		}
		t.Sections = append(t.Sections, sec)
	}
	return t
}

func rowFor(it model.Item) Row {
	r := Row{
		ID:        it.ID,
		Text:      it.Text,
		Notes:     it.Notes,
		Completed: it.Completed,
	}
	if it.Priority != model.PriorityNone {
		r.Badges = append(r.Badges, Badge{
			Kind:  BadgePriority,
			Class: "priority-" + string(it.Priority),
			Text:  it.Priority.Label(),
		})
	}
	if !it.DueDate.IsZero() {
		r.Badges = append(r.Badges, Badge{Kind: BadgeDue, Class: "date", Text: it.DueDate.Display()})
	}
	if it.Notes != "" {
		r.Actions = append(r.Actions, ActionNotes)
	}
	r.Actions = append(r.Actions, ActionToggle, ActionEdit, ActionDelete, ActionMove)
	return r
}
