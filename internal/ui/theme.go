package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + border.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Header, Count                 lipgloss.Style
	Notes, Date                                   lipgloss.Style
	Priority                                      map[string]lipgloss.Style // keyed by badge class

	BoxUnchecked, BoxChecked string
	Expanded, Collapsed      string
	SymDone, SymPending      string
	Border                   lipgloss.Border
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		t := classic()
		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
		t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		t.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.Border = lipgloss.RoundedBorder()
		current = t
	case "mono":
		SetColorForcing(false, true)
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain, Success: plain,
			Error: plain, Pending: plain, Selected: plain.Reverse(true),
			Done: plain.Strikethrough(true), Header: plain.Bold(true), Count: plain,
			Notes: plain, Date: plain,
			Priority: map[string]lipgloss.Style{},

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			Expanded: "v", Collapsed: ">",
			SymDone: "x", SymPending: "-",
			Border: lipgloss.NormalBorder(),
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Notes:    lipgloss.NewStyle().Faint(true).Italic(true),
		Date:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Priority: map[string]lipgloss.Style{
			"priority-high":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			"priority-medium": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			"priority-low":    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		},

		BoxUnchecked: "☐", BoxChecked: "☑",
		Expanded: "▼", Collapsed: "▶",
		SymDone: "✔", SymPending: "•",
		Border: lipgloss.NormalBorder(),
	}
}

// Expose what renderers need
func Current() Theme { return current }
