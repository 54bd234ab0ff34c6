// Package tui is the interactive list: collapsible category groups, inline
// add/edit, delete confirmation and keyboard reordering within a group.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/reorder"
	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/ui"
	"github.com/idilsaglam/bucket/internal/view"
)

type rowKind int

const (
	kindHeader rowKind = iota
	kindItem
	kindNotes
)

// listItem adapts one line of the projected tree to bubbles/list.Item.
type listItem struct {
	kind    rowKind
	group   string // group label the line belongs to
	section view.Section
	row     view.Row
	notes   bool // notes shown under this item
	line    string
}

func (i listItem) FilterValue() string { return i.row.Text }

// id is the item a line acts on; empty for headers.
func (i listItem) id() string { return i.row.ID }

// Custom delegate to control how lines render (single line each)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	var line string
	switch it.kind {
	case kindHeader:
		line = ui.Header(it.section)
	case kindItem:
		line = "  " + ui.Row(it.row, it.notes)
	case kindNotes:
		line = "      " + ui.Current().Notes.Render(it.line)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

var keys = struct {
	Quit, Toggle, Open, Add, Edit, Delete, Up, Down, Confirm, Cancel key.Binding
}{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done/expand")),
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand/notes")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Up:      key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
	Down:    key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
	Confirm: key.NewBinding(key.WithKeys("y", "enter")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc")),
}

// Model is the bubbletea model. It never edits items itself; every change
// goes through the store and the list is re-projected afterwards.
type Model struct {
	ctx      context.Context
	store    *store.Store
	list     list.Model
	expanded view.Expansion
	notes    map[string]bool

	mode     mode
	ti       textinput.Model // shared by add & edit
	target   string          // item being edited or deleted
	addGroup string          // group the next add lands in
	status   string
	inputErr string
}

// New builds the model around an already loaded store.
func New(ctx context.Context, s *store.Store) Model {
	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted

	extra := func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Edit, keys.Delete, keys.Up, keys.Down}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctx:      ctx,
		store:    s,
		list:     l,
		expanded: view.Expansion{},
		notes:    map[string]bool{},
		ti:       ti,
	}
	m.refresh("")
	return m
}

// SetStatus shows msg in the footer.
func (m *Model) SetStatus(msg string) { m.status = msg }

// Expand opens a group, as if its header had been toggled.
func (m *Model) Expand(label string) {
	m.expanded.Expand(label)
	m.refresh("")
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-6)
		return m, nil
	}
	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateInput(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	sel, _ := m.list.SelectedItem().(listItem)

	switch {
	case key.Matches(km, keys.Quit):
		return m, tea.Quit

	case key.Matches(km, keys.Toggle):
		if sel.kind == kindHeader {
			m.expanded.Toggle(sel.group)
			m.refresh(sel.group)
			return m, nil
		}
		if id := sel.id(); id != "" {
			m.apply(m.store.Toggle(m.ctx, id))
			m.refresh(id)
		}
		return m, nil

	case key.Matches(km, keys.Open):
		switch sel.kind {
		case kindHeader:
			m.expanded.Toggle(sel.group)
			m.refresh(sel.group)
		case kindItem, kindNotes:
			if sel.row.Notes != "" {
				m.notes[sel.id()] = !m.notes[sel.id()]
				m.refresh(sel.id())
			}
		}
		return m, nil

	case key.Matches(km, keys.Add):
		m.mode = modeAdd
		m.addGroup = sel.group
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item text..."
		cmd := m.ti.Focus()
		return m, cmd

	case key.Matches(km, keys.Edit):
		if id := sel.id(); id != "" {
			it, _ := m.store.Get(id)
			m.mode = modeEdit
			m.target = id
			m.inputErr = ""
			m.ti.SetValue(it.Text)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit item text..."
			cmd := m.ti.Focus()
			return m, cmd
		}
		return m, nil

	case key.Matches(km, keys.Delete):
		if id := sel.id(); id != "" {
			m.mode = modeConfirmDelete
			m.target = id
		}
		return m, nil

	case key.Matches(km, keys.Up), key.Matches(km, keys.Down):
		if id := sel.id(); id != "" {
			delta := 1
			if key.Matches(km, keys.Up) {
				delta = -1
			}
			m.move(id, delta)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// move shifts id by delta within its category.
func (m *Model) move(id string, delta int) {
	it, ok := m.store.Get(id)
	if !ok {
		return
	}
	k, count, _ := reorder.Position(m.store.All(), id)
	next := k + delta
	if next < 0 || next >= count {
		return
	}
	m.apply(m.store.Move(m.ctx, reorder.Drop{ID: id, Category: it.Category, Index: next}))
	m.refresh(id)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.inputErr = "Text cannot be empty"
				return m, nil
			}
			focus := m.target
			if m.mode == modeAdd {
				cat := m.addGroup
				if cat == category.Uncategorized {
					cat = ""
				}
				it, err := m.store.Add(m.ctx, model.Fields{Text: text, Category: cat})
				m.apply(it, err)
				if err == nil {
					m.expanded.Expand(category.GroupOf(it))
					focus = it.ID
				}
			} else {
				m.apply(m.store.EditText(m.ctx, m.target, text))
			}
			m.closeInput()
			m.refresh(focus)
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = modeList
	m.target = ""
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, keys.Confirm):
		m.apply(m.store.Remove(m.ctx, m.target))
		delete(m.notes, m.target)
		m.mode = modeList
		m.target = ""
		m.refresh("")
	case key.Matches(km, keys.Cancel):
		m.mode = modeList
		m.target = ""
	}
	return m, nil
}

// apply turns a store result into a status line. Invalid input and unknown
// ids are expected here (stale selection, empty text) and never fatal.
func (m *Model) apply(_ model.Item, err error) {
	switch {
	case err == nil:
		m.status = ""
		if perr := m.store.LastPersistError(); perr != nil {
			m.status = "not saved: " + perr.Error()
		}
	case errors.Is(err, model.ErrNotFound):
		m.status = "item no longer exists"
	default:
		m.status = err.Error()
	}
}

// refresh re-projects the store and keeps the cursor on focus (an item id or
// group label) when given, otherwise on the same line index.
func (m *Model) refresh(focus string) {
	cursor := m.list.Index()
	tree := view.Project(m.store.Groups(), m.expanded)

	var lines []list.Item
	for _, sec := range tree.Sections {
		lines = append(lines, listItem{kind: kindHeader, group: sec.Label, section: sec})
		for _, r := range sec.Rows {
			shown := m.notes[r.ID] && r.Notes != ""
			lines = append(lines, listItem{kind: kindItem, group: sec.Label, row: r, notes: shown})
			if shown {
				for _, n := range strings.Split(r.Notes, "\n") {
					lines = append(lines, listItem{kind: kindNotes, group: sec.Label, row: r, line: n})
				}
			}
		}
	}
	m.list.SetItems(lines)

	if focus != "" {
		for i, li := range lines {
			it := li.(listItem)
			if (it.kind == kindItem && it.row.ID == focus) || (it.kind == kindHeader && it.group == focus) {
				cursor = i
				break
			}
		}
	}
	if cursor >= len(lines) {
		cursor = len(lines) - 1
	}
	if cursor >= 0 {
		m.list.Select(cursor)
	}
	st := m.store.Stats()
	m.list.Title = ui.StatsLine("Bucket", st)
}

func (m Model) View() string {
	var content string
	if len(m.list.Items()) == 0 {
		content = m.list.Title + "\n\n" + ui.Current().Muted.Render("No items yet. Press a to add one")
	} else {
		content = m.list.View()
	}

	switch m.mode {
	case modeAdd, modeEdit:
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Edit item"
		if m.mode == modeAdd {
			group := m.addGroup
			if group == "" {
				group = category.Uncategorized
			}
			title = "Add to " + group
		}
		if m.inputErr != "" {
			title += " - " + ui.Current().Error.Render(m.inputErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	case modeConfirmDelete:
		it, _ := m.store.Get(m.target)
		content += "\n" + ui.Current().Error.Render(fmt.Sprintf("Delete %q? (y/n)", it.Text))
	}
	if m.status != "" {
		content += "\n" + ui.Current().Pending.Render(m.status)
	}
	return ui.PanelString(content)
}
