// Package routes maps navigation state to views through a static, ordered
// route table.
package routes

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
)

var (
	// ErrDuplicateKey is returned when two entries share a RouteKey.
	ErrDuplicateKey = errors.New("routes: duplicate route key")
	// ErrNoDefault is returned when the default key has no entry.
	ErrNoDefault = errors.New("routes: default route key has no entry")
	// ErrNoListView is returned for an entry without a list view.
	ErrNoListView = errors.New("routes: entry has no list view")
)

// Fallback selects what a deep path such as /zlecenia/42/edytuj resolves to
// when the entry has no sub-route for it.
type Fallback string

const (
	FallbackList     Fallback = "list"
	FallbackNotFound Fallback = "not_found"
)

// Valid reports whether f is a known fallback.
func (f Fallback) Valid() bool {
	return f == FallbackList || f == FallbackNotFound
}

// ViewFunc builds a view for a state. It must be pure.
type ViewFunc func(navigation.State) View

// Entry is one section of the table. Detail and Create are optional; an
// entry without them serves its list for record and create paths.
type Entry struct {
	Key         navigation.RouteKey
	Title       string
	Description string // Markdown
	List        ViewFunc
	Detail      ViewFunc
	Create      ViewFunc
	// OnUnmatchedDeepPath defaults to FallbackList.
	OnUnmatchedDeepPath Fallback
}

// Table is an ordered, immutable set of entries with one default.
type Table struct {
	entries    []Entry
	index      map[navigation.RouteKey]int
	defaultKey navigation.RouteKey
	notFound   ViewFunc
}

// Option customises a Table.
type Option func(*Table)

// WithNotFound sets the view used by entries whose deep-path policy is
// FallbackNotFound.
func WithNotFound(fn ViewFunc) Option {
	return func(t *Table) { t.notFound = fn }
}

// NewTable validates entries and builds the lookup index.
func NewTable(defaultKey navigation.RouteKey, entries []Entry, opts ...Option) (*Table, error) {
	t := &Table{
		entries:    make([]Entry, len(entries)),
		index:      make(map[navigation.RouteKey]int, len(entries)),
		defaultKey: defaultKey,
		notFound:   NotFoundView,
	}
	for i, e := range entries {
		if _, dup := t.index[e.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		if e.List == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoListView, e.Key)
		}
		if e.OnUnmatchedDeepPath == "" {
			e.OnUnmatchedDeepPath = FallbackList
		}
		if !e.OnUnmatchedDeepPath.Valid() {
			return nil, fmt.Errorf("routes: entry %q: invalid deep path fallback %q", e.Key, e.OnUnmatchedDeepPath)
		}
		t.entries[i] = e
		t.index[e.Key] = i
	}
	if _, ok := t.index[defaultKey]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoDefault, defaultKey)
	}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// DefaultKey returns the key of the fallback entry.
func (t *Table) DefaultKey() navigation.RouteKey { return t.defaultKey }

// Lookup returns the entry for key, or the default entry and false.
func (t *Table) Lookup(key navigation.RouteKey) (Entry, bool) {
	if i, ok := t.index[key]; ok {
		return t.entries[i], true
	}
	return t.entries[t.index[t.defaultKey]], false
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
