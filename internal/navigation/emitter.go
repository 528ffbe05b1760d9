package navigation

// Emitter requests navigations on behalf of an input surface (a button, a
// table row, a drawer). It is fire-and-forget: the write is the only signal.
type Emitter struct {
	store   Store
	closers []func()
}

// NewEmitter returns an emitter writing to store.
func NewEmitter(store Store) Emitter {
	return Emitter{store: store}
}

// Within returns a copy of e that runs close on every emit.
// Emitters living inside a transient surface, such as the mobile drawer, use
// it so that navigating dismisses the surface.
func (e Emitter) Within(close func()) Emitter {
	closers := make([]func(), 0, len(e.closers)+1)
	closers = append(closers, e.closers...)
	closers = append(closers, close)
	return Emitter{store: e.store, closers: closers}
}

// Emit closes the owning surfaces and writes path to the store. Surfaces
// close first so that subscribers rendering the new location already see
// them dismissed. A write the store would reject leaves them untouched.
func (e Emitter) Emit(path string) error {
	if e.store.Notifying() {
		return ErrNavigationDuringNotify
	}
	for _, c := range e.closers {
		c()
	}
	return e.store.Navigate(path)
}
