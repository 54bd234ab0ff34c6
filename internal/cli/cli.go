// Package cli wires the cobra command tree to the store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/bucket/internal/backend"
	"github.com/idilsaglam/bucket/internal/config"
	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/ui"
)

// Exit codes: 0 ok, 1 runtime/persistence error, 2 usage or input error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks mistakes in how a command was invoked.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// env is the state shared by every command of one invocation.
type env struct {
	v        *viper.Viper
	cfgFile  string
	noColor  bool
	color    bool
	cfg      config.Config
	now      func() time.Time
	in       io.Reader
	openGate func(ctx context.Context, c config.Config) (store.Gateway, io.Closer, error)
}

func newEnv() *env {
	return &env{
		v:        viper.New(),
		now:      time.Now,
		in:       os.Stdin,
		openGate: backend.Open,
	}
}

// New returns the root command.
func New() *cobra.Command {
	return newRoot(newEnv())
}

func newRoot(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucket",
		Short: "A categorised list you can reorder, synced to a document store.",
		Long: `bucket keeps one ordered list of items grouped by category.

Every change is written back to the configured backend: an HTTP endpoint
(see "bucket serve"), a JSON file, a diskv directory or a SQLite database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
			cfg, err := config.Load(e.v, e.cfgFile)
			if err != nil {
				return usageError{msg: err.Error()}
			}
			e.cfg = cfg
			ui.SetTheme(cfg.Theme)
			ui.SetColorForcing(e.color, e.noColor)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&e.cfgFile, "config", "", "config file (default .bucket.{yaml,toml,json} in ./ or $HOME)")
	pf.String("backend", config.BackendHTTP, "storage backend: http, file, diskv or sqlite")
	pf.String("url", "", "base URL of the items endpoint (http backend)")
	pf.String("path", "", "data path for the file, diskv and sqlite backends")
	pf.String("theme", "", "color theme: classic, neon or mono")
	pf.BoolVar(&e.noColor, "no-color", false, "disable colors")
	pf.BoolVar(&e.color, "color", false, "force colors even when not a terminal")
	for _, name := range []string{config.KeyBackend, config.KeyURL, config.KeyPath, config.KeyTheme} {
		_ = e.v.BindPFlag(name, pf.Lookup(name))
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	AddCommands(cmd, e)
	return cmd
}

func AddCommands(topLevel *cobra.Command, e *env) {
	addList(topLevel, e)
	addAdd(topLevel, e)
	addDone(topLevel, e)
	addEdit(topLevel, e)
	addRemove(topLevel, e)
	addMove(topLevel, e)
	addShow(topLevel, e)
	addCategories(topLevel, e)
	addTUI(topLevel, e)
	addServe(topLevel, e)
	addWatch(topLevel, e)
}

// Run executes the command line and returns an exit code.
func Run(args []string) int {
	return run(newEnv(), args, os.Stdout, os.Stderr)
}

func run(e *env, args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRoot(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	ui.SetOutput(stdout, stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	ui.Fail(err.Error())
	return exitCode(err)
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue),
		errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrNotFound):
		return exitUsage
	case strings.HasPrefix(err.Error(), "unknown command"):
		return exitUsage
	}
	return exitError
}

// loadNote is appended to the help of commands that read the list first.
const loadNote = `
The stored list is loaded before anything else. If it cannot be loaded (the
server is down or answers with an error) the command stops with exit code 1
instead of carrying on with an empty list, because the next save would
replace the whole stored list with it. The interactive "bucket tui" starts
empty with a warning instead.`

// openStore opens the configured backend and loads the list. A failed load
// aborts: saving after it would overwrite the stored list with a partial one.
func (e *env) openStore(ctx context.Context) (*store.Store, io.Closer, error) {
	gw, closer, err := e.openGate(ctx, e.cfg)
	if err != nil {
		return nil, nil, err
	}
	s := store.New(gw,
		store.WithLabels(e.cfg.Categories),
		store.WithClock(e.now),
		store.WithLogger(log.New(io.Discard, "[bucket] ", log.LstdFlags)),
	)
	if err := s.Load(ctx); err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return s, closer, nil
}

// saved reports a failed save after a mutation.
func saved(s *store.Store) error {
	return s.LastPersistError()
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: bucket %s", usage)
		}
		return nil
	}
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: bucket %s", usage)
		}
		return nil
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
