package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/bucket/internal/config"
	"github.com/idilsaglam/bucket/internal/store/jsonstore"
	"github.com/idilsaglam/bucket/internal/ui"
)

func addWatch(topLevel *cobra.Command, e *env) {
	o := listOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print the list whenever the JSON file backend changes",
		Example: `
bucket watch --backend file --path bucket.json
`,
		Args: exactArgs(0, "watch [flags]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.Backend != config.BackendFile {
				return usagef("watch: only the file backend can be watched (got %q)", e.cfg.Backend)
			}
			js, err := jsonstore.New(e.cfg.Path)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			changes, err := js.Watch(ctx, 100*time.Millisecond)
			if err != nil {
				return err
			}
			if err := e.printOnce(ctx, cmd, o); err != nil {
				return err
			}
			for range changes {
				fmt.Fprintln(cmd.OutOrStdout())
				if err := e.printOnce(ctx, cmd, o); err != nil {
					ui.Warn(err.Error())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&o.Collapsed, "collapsed", false, "only print group headers with counts")
	cmd.Flags().BoolVar(&o.Notes, "notes", false, "print notes under each item")
	topLevel.AddCommand(cmd)
}

func (e *env) printOnce(ctx context.Context, cmd *cobra.Command, o listOptions) error {
	s, closer, err := e.openStore(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()
	return printList(cmd.OutOrStdout(), s, o)
}
