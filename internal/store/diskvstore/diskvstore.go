// Package diskvstore keeps the list document in a diskv key-value directory.
package diskvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/store/jsonstore"
)

// DocumentKey is the key the whole sequence is stored under.
const DocumentKey = "items"

type Store struct {
	d        *diskv.Diskv
	basePath string
}

// New opens (creating on first write) a diskv store rooted at basePath.
func New(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("diskvstore: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("diskvstore: ensure base path: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

func (s *Store) FetchAll(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.d.Has(DocumentKey) {
		return []model.Item{}, nil
	}
	b, err := s.d.Read(DocumentKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("diskvstore: read: %w", err)
	}
	return jsonstore.Decode(b), nil
}

func (s *Store) ReplaceAll(ctx context.Context, items []model.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := jsonstore.Encode(items)
	if err != nil {
		return err
	}
	if err := s.d.Write(DocumentKey, b); err != nil {
		return fmt.Errorf("diskvstore: write: %w", err)
	}
	return nil
}
