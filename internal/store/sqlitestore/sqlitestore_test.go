package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/bucket/internal/model"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bucket.sqlite")

	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	items, err := s.FetchAll(ctx)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty store, got %v %v", items, err)
	}

	if err := s.ReplaceAll(ctx, []model.Item{{ID: "a", Text: "A", Priority: model.PriorityLow}}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := s.ReplaceAll(ctx, []model.Item{{ID: "b", Text: "B"}, {ID: "a", Text: "A", Priority: model.PriorityLow}}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	items, err = s.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(items) != 2 || items[0].ID != "b" || items[1].Priority != model.PriorityLow {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
