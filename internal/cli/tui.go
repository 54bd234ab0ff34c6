package cli

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/bucket/internal/debug"
	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/tui"
)

func addTUI(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the list interactively",
		Long: `Browse and edit the list interactively.

  space/x   toggle done (or expand a group)
  enter     expand a group / show notes
  a e d     add, edit, delete
  K J       move the item up or down within its group
  q         quit`,
		Args: exactArgs(0, "tui"),
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr belongs to the alt screen; send logs to a file instead
			logger := log.New(io.Discard, "", 0)
			if debug.Enabled() || os.Getenv("BUCKET_LOG") != "" {
				f, err := tea.LogToFile("bucket-debug.log", "bucket")
				if err != nil {
					return err
				}
				defer f.Close()
				debug.SetOutput(f)
				logger = log.Default()
			}

			gw, closer, err := e.openGate(cmd.Context(), e.cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			bg := store.Background(gw, logger)
			s := store.New(bg,
				store.WithLabels(e.cfg.Categories),
				store.WithClock(e.now),
				store.WithLogger(logger),
			)
			return tui.Run(cmd.Context(), s, bg)
		},
	}
	topLevel.AddCommand(cmd)
}
