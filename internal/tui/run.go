package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/bucket/internal/store"
)

// Run loads the store and starts the program. A failed load is shown as a
// warning over an empty list. Saves run in the background; Run waits for
// them before returning.
func Run(ctx context.Context, s *store.Store, bg *store.BackgroundGateway) error {
	loadErr := s.Load(ctx)

	m := New(ctx, s)
	if loadErr != nil {
		m.SetStatus("could not load items: " + loadErr.Error())
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	if bg != nil {
		if err := bg.Wait(); err != nil {
			return fmt.Errorf("saving: %w (%d failed writes)", err, bg.Failures())
		}
	}
	return nil
}
