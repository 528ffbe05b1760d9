// Package navigation turns location fragments into navigation state and
// holds the store that owns the current location.
package navigation

// RouteKey identifies a top-level dashboard section, e.g. "klienci".
type RouteKey string

// RefKind tags the variant held by a ResourceRef.
type RefKind int

const (
	RefAbsent RefKind = iota
	RefNew
	RefID
)

// String returns the JSON-facing name of the kind.
func (k RefKind) String() string {
	switch k {
	case RefNew:
		return "new"
	case RefID:
		return "id"
	default:
		return "absent"
	}
}

// ResourceRef is the optional second path segment. A literal id "nowa" can
// never be mistaken for the create action because the kind is carried
// separately from the value.
type ResourceRef struct {
	Kind RefKind `json:"kind"`
	ID   string  `json:"id,omitempty"`
	// Marker is the segment text that produced a RefNew, kept for
	// round-tripping ("nowa" and "new" are both accepted).
	Marker string `json:"marker,omitempty"`
}

// Absent returns the empty reference.
func Absent() ResourceRef { return ResourceRef{} }

// NewSentinel returns a create-action reference spelled with marker.
func NewSentinel(marker string) ResourceRef {
	return ResourceRef{Kind: RefNew, Marker: marker}
}

// ID returns a reference to a specific record.
func ID(id string) ResourceRef { return ResourceRef{Kind: RefID, ID: id} }

// IsAbsent reports whether no reference was present.
func (r ResourceRef) IsAbsent() bool { return r.Kind == RefAbsent }

// segment returns the path segment this reference serializes to.
func (r ResourceRef) segment() string {
	switch r.Kind {
	case RefID:
		return r.ID
	case RefNew:
		return r.Marker
	default:
		return ""
	}
}

// State is the parsed location. It is a value; holders never share a
// mutable copy.
type State struct {
	Key RouteKey    `json:"key"`
	Ref ResourceRef `json:"ref"`
	// Path is the canonical fragment without the leading '#'.
	Path string `json:"path"`
	// Extra holds segments past the second one. A non-empty Extra marks a
	// deep path that no table entry addresses directly.
	Extra []string `json:"extra,omitempty"`
}

// Deep reports whether the location carried more segments than a
// section/id pair.
func (s State) Deep() bool { return len(s.Extra) > 0 }

// Equal compares two states by value.
func (s State) Equal(o State) bool {
	if s.Key != o.Key || s.Ref != o.Ref || s.Path != o.Path || len(s.Extra) != len(o.Extra) {
		return false
	}
	for i := range s.Extra {
		if s.Extra[i] != o.Extra[i] {
			return false
		}
	}
	return true
}
