// package wishlist owns the user's saved-movie collection.
//
// The collection is an insertion-ordered sequence with unique movie ids,
// mirrored into the storage adapter after every mutation. Inserting a movie
// first attempts a best-effort detail lookup; a failed lookup never blocks
// the insert.
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/storage"
)

// StorageKey is the persistence slot for the serialized collection.
const StorageKey = "movieWishlist"

// Enricher looks up the detail record for a movie id.
//
// Implemented by the catalog client; tests substitute fakes.
type Enricher interface {
	MovieDetail(ctx context.Context, id int64) (map[string]any, error)
}

// Listener receives the live entry sequence after every mutation.
type Listener func([]Movie)

// Store owns the wishlist collection.
//
// Overlapping Toggle calls for the same id are last-write-wins on the
// persisted value; callers needing strict consistency must serialize.
type Store struct {
	storage   storage.Store
	enricher  Enricher
	logger    *log.Logger
	mu        sync.Mutex
	entries   []Movie
	listeners []Listener
}

// NewStore creates a wishlist store and loads the persisted collection.
//
// A missing value starts the collection empty. A malformed value is an
// explicit recovery path: the corruption is logged and the collection
// starts empty rather than failing construction.
func NewStore(st storage.Store, enricher Enricher, logger *log.Logger) *Store {
	s := &Store{storage: st, enricher: enricher, logger: logger}

	raw, err := st.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Warn("failed to read wishlist, starting empty", "error", err)
		}
		return s
	}

	if err := json.Unmarshal([]byte(raw), &s.entries); err != nil {
		logger.Warn("recovering from malformed wishlist data, starting empty", "error", err)
		s.entries = nil
	}

	return s
}

// Toggle flips membership for the given movie.
//
// Insert: the movie is enriched via the detail lookup (lookup fields win on
// collision) and appended; a failed lookup appends the movie as supplied.
// Remove: the existing entry is dropped. Both branches persist the full
// collection before returning. The returned bool reports whether the movie
// is a member after the call; the error covers persistence failure only.
func (s *Store) Toggle(ctx context.Context, movie Movie) (bool, error) {
	s.mu.Lock()
	if idx := s.indexOf(movie.ID); idx >= 0 {
		s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		err := s.persistLocked()
		s.mu.Unlock()
		s.notify()
		return false, err
	}
	s.mu.Unlock()

	// The lookup runs outside the lock; a slow response delays only this
	// toggle. Overlapping toggles of the same id can interleave here.
	entry := movie
	if s.enricher != nil {
		if detail, err := s.enricher.MovieDetail(ctx, movie.ID); err != nil {
			s.logger.Warn("enrichment failed, saving entry as supplied", "id", movie.ID, "error", err)
		} else {
			entry = merge(movie, detail)
		}
	}

	s.mu.Lock()
	if s.indexOf(entry.ID) < 0 {
		s.entries = append(s.entries, entry)
	}
	err := s.persistLocked()
	s.mu.Unlock()
	s.notify()
	return true, err
}

// IsMember reports whether an entry with the given id exists. No I/O.
func (s *Store) IsMember(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Entries returns the live entry sequence.
//
// The store owns the slice exclusively; callers must not mutate it.
func (s *Store) Entries() []Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries
}

// Len returns the number of saved entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Subscribe registers a listener invoked after every mutation.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// indexOf returns the position of an id, or -1. Caller holds the lock.
func (s *Store) indexOf(id int64) int {
	for i, entry := range s.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked mirrors the collection into storage. Caller holds the lock.
func (s *Store) persistLocked() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to serialize wishlist: %w", err)
	}
	if s.entries == nil {
		data = []byte("[]")
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist wishlist: %w", err)
	}
	return nil
}

// notify fans the current entries out to listeners.
func (s *Store) notify() {
	s.mu.Lock()
	entries := s.entries
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(entries)
	}
}
