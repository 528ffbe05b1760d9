package navigation

import (
	"errors"
	"slices"
	"sync"
)

// ErrNavigationDuringNotify is returned when a subscriber tries to navigate
// while the store is still delivering the previous change.
var ErrNavigationDuringNotify = errors.New("navigation: navigate called during change notification")

// Store owns the current location. Views and the sidebar read from it;
// emitters write to it.
type Store interface {
	Current() State
	// Subscribe registers fn for every subsequent change and returns a
	// function that removes it.
	Subscribe(fn func(State)) (unsubscribe func())
	// Navigate replaces the current location with raw.
	Navigate(raw string) error
	// Notifying reports whether subscribers are being notified right now.
	// A Navigate issued meanwhile is rejected.
	Notifying() bool
}

// MemoryStore is an in-memory Store. It expects a single writer: every
// Navigate produces exactly one synchronous notification per subscriber,
// carrying the state of that write. Writes are never coalesced.
type MemoryStore struct {
	parser Parser

	mu        sync.Mutex
	current   State
	subs      map[uint64]func(State)
	nextID    uint64
	notifying bool
}

// NewMemoryStore creates a store positioned at initial.
func NewMemoryStore(parser Parser, initial string) *MemoryStore {
	return &MemoryStore{
		parser:  parser,
		current: parser.Parse(initial),
		subs:    make(map[uint64]func(State)),
	}
}

// Parser returns the parser used to interpret writes.
func (s *MemoryStore) Parser() Parser { return s.parser }

// Current returns the most recently written state.
func (s *MemoryStore) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Notifying implements Store.
func (s *MemoryStore) Notifying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifying
}

// Subscribe implements Store.
func (s *MemoryStore) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Navigate implements Store. Subscribers run outside the lock, in
// registration order, and may read Current but not call Navigate.
func (s *MemoryStore) Navigate(raw string) error {
	s.mu.Lock()
	if s.notifying {
		s.mu.Unlock()
		return ErrNavigationDuringNotify
	}
	st := s.parser.Parse(raw)
	s.current = st
	s.notifying = true
	fns := s.snapshot()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.notifying = false
		s.mu.Unlock()
	}()
	for _, fn := range fns {
		fn(st)
	}
	return nil
}

// snapshot must be called with mu held.
func (s *MemoryStore) snapshot() []func(State) {
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(State), len(ids))
	for i, id := range ids {
		fns[i] = s.subs[id]
	}
	return fns
}
