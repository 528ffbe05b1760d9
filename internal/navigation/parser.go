package navigation

import "strings"

// DefaultNewMarkers are the segments that mean "create" rather than an id.
var DefaultNewMarkers = []string{"nowa", "new"}

// Parser converts location fragments into State values. It holds no
// mutable fields, so one Parser may serve any number of subscribers.
type Parser struct {
	// DefaultKey is the section reported for the empty fragment.
	DefaultKey RouteKey
	// NewMarkers are the second segments parsed as RefNew.
	NewMarkers []string
}

// NewParser returns a parser with the default new markers.
func NewParser(defaultKey RouteKey) Parser {
	return Parser{DefaultKey: defaultKey, NewMarkers: DefaultNewMarkers}
}

// Parse never fails: unknown sections and odd segment counts degrade to a
// state without a resource reference.
func (p Parser) Parse(raw string) State {
	segs := Segments(raw)
	if len(segs) == 0 {
		return State{Key: p.DefaultKey, Path: "/"}
	}

	st := State{Key: RouteKey(segs[0])}
	switch len(segs) {
	case 1:
	case 2:
		st.Ref = p.ref(segs[1])
	default:
		st.Extra = append([]string(nil), segs[1:]...)
	}
	st.Path = "/" + strings.Join(segs, "/")
	return st
}

// Format serializes a state back into its canonical fragment path. The root
// state (Path "/") formats as "/" even though its Key is the default section.
func (p Parser) Format(s State) string {
	if s.Path == "/" || s.Key == "" {
		return "/"
	}
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(string(s.Key))
	if len(s.Extra) > 0 {
		for _, e := range s.Extra {
			b.WriteByte('/')
			b.WriteString(e)
		}
		return b.String()
	}
	if seg := s.Ref.segment(); seg != "" {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// Href returns the fragment form ("#/klienci/42") of a state.
func (p Parser) Href(s State) string { return "#" + p.Format(s) }

func (p Parser) ref(seg string) ResourceRef {
	for _, m := range p.NewMarkers {
		if seg == m {
			return NewSentinel(seg)
		}
	}
	return ID(seg)
}

// Segments strips a leading '#', splits on '/' and drops empty segments, so
// "#//klienci//42/" yields ["klienci", "42"].
func Segments(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "#")
	parts := strings.Split(raw, "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
