// Package store owns the ordered item sequence and keeps a Gateway in sync
// with it after every mutation.
package store

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/idilsaglam/bucket/internal/category"
	"github.com/idilsaglam/bucket/internal/model"
	"github.com/idilsaglam/bucket/internal/reorder"
)

// Gateway is the persistence boundary: a document holding the whole
// sequence, read and overwritten as a unit.
type Gateway interface {
	// FetchAll returns the stored sequence. A missing or malformed document
	// yields an empty sequence.
	FetchAll(ctx context.Context) ([]model.Item, error)
	// ReplaceAll overwrites the stored sequence with items.
	ReplaceAll(ctx context.Context, items []model.Item) error
}

// Stats are the counters shown above the list.
type Stats struct {
	Total     int
	Completed int
	Remaining int
}

// Store is the single writer of the item sequence. It is not safe for
// concurrent use; callers drive it from one goroutine.
type Store struct {
	items   []model.Item
	labels  []string
	gw      Gateway
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
	lastErr error
}

type Option func(*Store)

// WithLabels sets the known category labels, in display order.
func WithLabels(labels []string) Option {
	return func(s *Store) { s.labels = category.Normalize(labels) }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides id generation, for tests.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithItems seeds the sequence without touching the gateway.
func WithItems(items []model.Item) Option {
	return func(s *Store) { s.items = append([]model.Item(nil), items...) }
}

// New returns an empty store persisting through gw.
func New(gw Gateway, opts ...Option) *Store {
	s := &Store{
		labels: append([]string(nil), category.DefaultLabels...),
		gw:     gw,
		logger: log.New(io.Discard, "[store] ", log.LstdFlags),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the in-memory sequence with the gateway's. On failure the
// store is left empty and the error is returned; the caller decides whether
// an empty list is acceptable.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.gw.FetchAll(ctx)
	if err != nil {
		s.items = nil
		s.logger.Printf("load failed: %v", err)
		return fmt.Errorf("load: %w: %w", model.ErrPersistence, err)
	}
	s.items = items
	return nil
}

// Add trims and validates f, then prepends a new item.
func (s *Store) Add(ctx context.Context, f model.Fields) (model.Item, error) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return model.Item{}, fmt.Errorf("add: %w: empty text", model.ErrInvalidInput)
	}
	if !f.Priority.Valid() {
		return model.Item{}, fmt.Errorf("add: %w: priority %q", model.ErrInvalidInput, f.Priority)
	}
	cat := strings.TrimSpace(f.Category)
	if !category.Known(s.labels, cat) {
		return model.Item{}, fmt.Errorf("add: %w: unknown category %q", model.ErrInvalidInput, cat)
	}

	it := model.Item{
		ID:       s.newID(),
		Text:     text,
		Notes:    strings.TrimSpace(f.Notes),
		Category: cat,
		Priority: f.Priority,
		DueDate:  f.DueDate,
		Created:  s.now().UTC(),
	}
	s.items = append([]model.Item{it}, s.items...)
	s.persist(ctx)
	return it, nil
}

// Toggle flips the completion flag of id.
func (s *Store) Toggle(ctx context.Context, id string) (model.Item, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, fmt.Errorf("toggle %s: %w", id, model.ErrNotFound)
	}
	s.items[i].Completed = !s.items[i].Completed
	s.persist(ctx)
	return s.items[i], nil
}

// EditText replaces the text of id with the trimmed text.
func (s *Store) EditText(ctx context.Context, id, text string) (model.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, fmt.Errorf("edit %s: %w: empty text", id, model.ErrInvalidInput)
	}
	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, fmt.Errorf("edit %s: %w", id, model.ErrNotFound)
	}
	s.items[i].Text = text
	s.persist(ctx)
	return s.items[i], nil
}

// Remove deletes id from the sequence.
func (s *Store) Remove(ctx context.Context, id string) (model.Item, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, fmt.Errorf("remove %s: %w", id, model.ErrNotFound)
	}
	it := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.persist(ctx)
	return it, nil
}

// Move places an item at a new index within its category.
func (s *Store) Move(ctx context.Context, d reorder.Drop) (model.Item, error) {
	next, err := reorder.Move(s.items, d)
	if err != nil {
		return model.Item{}, err
	}
	s.items = next
	s.persist(ctx)
	it, _ := s.Get(d.ID)
	return it, nil
}

// All returns a copy of the sequence.
func (s *Store) All() []model.Item {
	return append([]model.Item(nil), s.items...)
}

func (s *Store) Get(id string) (model.Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Labels returns the known category labels in display order.
func (s *Store) Labels() []string {
	return append([]string(nil), s.labels...)
}

// Groups partitions the current sequence by category.
func (s *Store) Groups() []category.Group {
	return category.Partition(s.items, s.labels)
}

func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.items)}
	for _, it := range s.items {
		if it.Completed {
			st.Completed++
		}
	}
	st.Remaining = st.Total - st.Completed
	return st
}

// LastPersistError is the error from the most recent save, nil if it
// succeeded. Local state is never rolled back on failure.
func (s *Store) LastPersistError() error {
	return s.lastErr
}

func (s *Store) persist(ctx context.Context) {
	s.lastErr = nil
	if s.gw == nil {
		return
	}
	if err := s.gw.ReplaceAll(ctx, s.All()); err != nil {
		s.lastErr = fmt.Errorf("save: %w: %w", model.ErrPersistence, err)
		s.logger.Printf("save failed: %v", err)
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
