package cli

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/idilsaglam/bucket/internal/config"
	"github.com/idilsaglam/bucket/internal/server"
	"github.com/idilsaglam/bucket/internal/store/jsonstore"
)

func addServe(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a list document over HTTP (GET/POST /items)",
		Long: `Serve a list document over HTTP for the http backend.

  GET  /items   the stored JSON array ([] when nothing is stored yet)
  POST /items   replace the stored array, answers {"status":"ok"}

The document is kept in a JSON file (serve.data, default data/bucket.json).`,
		Example: `
bucket serve --addr :8000 --data data/bucket.json
bucket serve --log-file bucket-serve.log
`,
		Args: exactArgs(0, "serve [flags]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := e.cfg.Serve
			docs, err := jsonstore.New(c.Data)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.ErrOrStderr()
			if c.LogFile != "" {
				lj := &lumberjack.Logger{
					Filename:   c.LogFile,
					MaxSize:    10, // megabytes
					MaxBackups: 3,
					MaxAge:     28, // days
				}
				defer lj.Close()
				out = lj
			}
			logger := log.New(out, "[serve] ", log.LstdFlags)

			srv := server.New(docs, &server.Config{Addr: c.Addr, Logger: logger})
			if err := srv.Start(); err != nil {
				return err
			}

			select {
			case err := <-srv.Err():
				return err
			case <-cmd.Context().Done():
			}
			shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(shutdown)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8000)")
	cmd.Flags().String("data", "", "JSON file holding the document (default data/bucket.json)")
	cmd.Flags().String("log-file", "", "write logs to a rotating file instead of stderr")
	_ = e.v.BindPFlag(config.KeyServeAddr, cmd.Flags().Lookup("addr"))
	_ = e.v.BindPFlag(config.KeyServeData, cmd.Flags().Lookup("data"))
	_ = e.v.BindPFlag(config.KeyServeLog, cmd.Flags().Lookup("log-file"))
	topLevel.AddCommand(cmd)
}
