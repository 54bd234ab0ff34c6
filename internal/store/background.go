package store

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/bucket/internal/model"
)

// BackgroundGateway runs every ReplaceAll on its own goroutine and returns
// immediately. Overlapping writes are allowed; the last one to land wins,
// which is fine because each write carries the full sequence.
type BackgroundGateway struct {
	gw     Gateway
	logger *log.Logger

	g    errgroup.Group
	mu   sync.Mutex
	errs []error
}

// Background wraps gw so saves do not block the caller.
func Background(gw Gateway, logger *log.Logger) *BackgroundGateway {
	if logger == nil {
		logger = log.Default()
	}
	return &BackgroundGateway{gw: gw, logger: logger}
}

func (b *BackgroundGateway) FetchAll(ctx context.Context) ([]model.Item, error) {
	return b.gw.FetchAll(ctx)
}

// ReplaceAll schedules the write and always returns nil. Failures are
// logged and reported by Wait.
func (b *BackgroundGateway) ReplaceAll(ctx context.Context, items []model.Item) error {
	snapshot := append([]model.Item(nil), items...)
	ctx = context.WithoutCancel(ctx)
	b.g.Go(func() error {
		if err := b.gw.ReplaceAll(ctx, snapshot); err != nil {
			b.logger.Printf("background save failed: %v", err)
			b.mu.Lock()
			b.errs = append(b.errs, err)
			b.mu.Unlock()
			return err
		}
		return nil
	})
	return nil
}

// Wait blocks until every scheduled write finished and returns the first
// failure, if any.
func (b *BackgroundGateway) Wait() error {
	return b.g.Wait()
}

// Failures returns how many scheduled writes failed so far.
func (b *BackgroundGateway) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.errs)
}
