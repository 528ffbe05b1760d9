package routes

import "github.com/ziadkadry99/hvacpanel/internal/navigation"

// Kind distinguishes the variants a section can render.
type Kind string

const (
	KindList     Kind = "list"
	KindDetail   Kind = "detail"
	KindCreate   Kind = "create"
	KindNotFound Kind = "not_found"
)

// View describes what to render. Views own their data; the router only
// hands them the resource reference.
type View struct {
	Name     string                 `json:"name"`
	Section  navigation.RouteKey    `json:"section"`
	Kind     Kind                   `json:"kind"`
	Resource navigation.ResourceRef `json:"resource"`
	Title    string                 `json:"title"`
	// Requested is the path that could not be resolved; set only on
	// not-found views.
	Requested string `json:"requested,omitempty"`
}

// Static returns a ViewFunc producing a view of the given kind and title.
func Static(kind Kind, title string) ViewFunc {
	return func(st navigation.State) View {
		return View{
			Name:     string(st.Key) + "." + string(kind),
			Section:  st.Key,
			Kind:     kind,
			Resource: st.Ref,
			Title:    title,
		}
	}
}

// NotFoundView is the default not-found view.
func NotFoundView(st navigation.State) View {
	return View{
		Name:      "not_found",
		Section:   st.Key,
		Kind:      KindNotFound,
		Title:     "Not found",
		Requested: st.Path,
	}
}

// Dispatcher resolves navigation state against a table.
type Dispatcher struct {
	table *Table
}

// NewDispatcher returns a dispatcher over t.
func NewDispatcher(t *Table) *Dispatcher {
	return &Dispatcher{table: t}
}

// Table returns the underlying route table.
func (d *Dispatcher) Table() *Table { return d.table }

// Dispatch is a pure function of st. Unknown sections are not errors: they
// resolve to the default entry's list view.
func (d *Dispatcher) Dispatch(st navigation.State) View {
	e, ok := d.table.Lookup(st.Key)
	if !ok {
		return e.List(navigation.State{Key: e.Key})
	}
	section := navigation.State{Key: e.Key}

	if st.Deep() {
		if e.OnUnmatchedDeepPath == FallbackNotFound {
			return d.table.notFound(st)
		}
		return e.List(section)
	}

	switch st.Ref.Kind {
	case navigation.RefID:
		if e.Detail != nil {
			return e.Detail(st)
		}
		return e.List(section)
	case navigation.RefNew:
		if e.Create != nil {
			return e.Create(st)
		}
		if e.OnUnmatchedDeepPath == FallbackNotFound {
			return d.table.notFound(st)
		}
		return e.List(section)
	default:
		return e.List(section)
	}
}
