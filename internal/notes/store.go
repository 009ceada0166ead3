// Package notes keeps a card's session-local copy of the remote note
// collection together with its derived category aggregate. The cache
// and the aggregate are recomputed together, never observable out of
// sync.
package notes

import (
	"context"
	"sync"

	"noteboard/internal/logging"
	"noteboard/internal/types"
)

// AllCategory is the implicit aggregate bucket counting every note.
const AllCategory = "all"

// API is the slice of the remote service a store needs.
type API interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	CreateNote(ctx context.Context, note types.Note) (*types.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type Store struct {
	api API
	log logging.Logger

	mu     sync.Mutex
	cache  []types.Note
	counts map[string]int
}

func NewStore(api API, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	store := &Store{api: api, log: log}
	store.recompute(nil)
	return store
}

// Load replaces the cache with the server's full collection. On any
// failure the cache is cleared rather than left partially updated; the
// error is returned so callers can log it, but listing degrades to an
// empty state instead of blocking the card.
func (s *Store) Load(ctx context.Context) error {
	fetched, err := s.api.ListNotes(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.recompute(nil)
		s.log.Warn("note list failed, showing empty state", logging.F("err", err))
		return err
	}
	s.recompute(fetched)
	return nil
}

// Create issues the write and, on success, reloads so the cache and
// aggregate pick up server-assigned fields. On failure the cache is
// untouched; no optimistic insert happens.
func (s *Store) Create(ctx context.Context, note types.Note) error {
	if _, err := s.api.CreateNote(ctx, note); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Delete issues the delete and reloads on success. Confirmation is the
// caller's job; by the time Delete runs the user has already agreed.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteNote(ctx, id); err != nil {
		return err
	}
	return s.Load(ctx)
}

// Notes returns a copy of the cached collection in server order.
func (s *Store) Notes() []types.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Note, len(s.cache))
	copy(out, s.cache)
	return out
}

// Counts returns a copy of the category aggregate, including the
// implicit AllCategory bucket.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.counts))
	for category, count := range s.counts {
		out[category] = count
	}
	return out
}

func (s *Store) Count(category string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[category]
}

func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[AllCategory]
}

// recompute rebuilds cache and aggregate together. Caller holds s.mu
// (or is the constructor).
func (s *Store) recompute(cache []types.Note) {
	s.cache = cache
	counts := map[string]int{AllCategory: len(cache)}
	for _, note := range cache {
		counts[note.CategoryOrDefault()]++
	}
	s.counts = counts
}
