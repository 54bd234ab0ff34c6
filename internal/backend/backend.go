// Package backend opens the store.Gateway selected by configuration.
package backend

import (
	"context"
	"fmt"
	"io"

	"github.com/idilsaglam/bucket/internal/config"
	"github.com/idilsaglam/bucket/internal/remote"
	"github.com/idilsaglam/bucket/internal/store"
	"github.com/idilsaglam/bucket/internal/store/diskvstore"
	"github.com/idilsaglam/bucket/internal/store/jsonstore"
	"github.com/idilsaglam/bucket/internal/store/sqlitestore"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the configured gateway and a closer for its resources.
func Open(ctx context.Context, c config.Config) (store.Gateway, io.Closer, error) {
	switch c.Backend {
	case config.BackendHTTP:
		return remote.New(c.URL, c.Timeout), nopCloser{}, nil
	case config.BackendFile:
		s, err := jsonstore.New(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case config.BackendDiskv:
		s, err := diskvstore.New(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(ctx, c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	}
	return nil, nil, fmt.Errorf("backend: unknown %q", c.Backend)
}
