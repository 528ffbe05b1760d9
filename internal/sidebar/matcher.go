// Package sidebar derives navigation highlight state and owns the sidebar's
// collapse and drawer state.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
)

// NavEntry is one link in the sidebar.
type NavEntry struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
	// AlsoActive lists glob patterns (doublestar syntax, matched against the
	// canonical path) of other locations that highlight this entry.
	AlsoActive []string `json:"also_active,omitempty"`
}

// Item is a NavEntry resolved against the current location.
type Item struct {
	NavEntry
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Matcher decides which entries are active.
type Matcher struct {
	entries []NavEntry
	segs    [][]string
}

// NewMatcher validates the AlsoActive patterns of every entry.
func NewMatcher(entries []NavEntry) (*Matcher, error) {
	m := &Matcher{
		entries: make([]NavEntry, len(entries)),
		segs:    make([][]string, len(entries)),
	}
	for i, e := range entries {
		for _, p := range e.AlsoActive {
			if !doublestar.ValidatePattern(p) {
				return nil, fmt.Errorf("sidebar: entry %q: invalid pattern %q", e.Path, p)
			}
		}
		m.entries[i] = e
		m.segs[i] = navigation.Segments(e.Path)
	}
	return m, nil
}

// Entries returns the configured entries.
func (m *Matcher) Entries() []NavEntry {
	out := make([]NavEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// IsActive compares whole path segments: /zlecenia is active on
// /zlecenia/7 but not on /zlecenia-extra/7. The root entry "/" is active
// only on the root path.
func IsActive(entry NavEntry, currentPath string) bool {
	return matches(navigation.Segments(entry.Path), entry.AlsoActive, currentPath)
}

func matches(entrySegs []string, also []string, currentPath string) bool {
	cur := navigation.Segments(currentPath)
	if len(entrySegs) == 0 {
		if len(cur) == 0 {
			return true
		}
	} else if hasSegmentPrefix(cur, entrySegs) {
		return true
	}
	canonical := "/" + strings.Join(cur, "/")
	for _, p := range also {
		if ok, _ := doublestar.Match(p, canonical); ok {
			return true
		}
	}
	return false
}

func hasSegmentPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Items resolves every entry against currentPath, in configured order.
func (m *Matcher) Items(currentPath string) []Item {
	items := make([]Item, len(m.entries))
	for i, e := range m.entries {
		items[i] = Item{
			NavEntry: e,
			Href:     "#" + e.Path,
			Active:   matches(m.segs[i], e.AlsoActive, currentPath),
		}
	}
	return items
}
