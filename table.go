package navroute

import "sync"

// Table holds the mapping from route name to definition thunk. It is created
// once from a creator function and materialized lazily on the first Resolve;
// after that it is immutable for the life of the process. The once guard keeps
// the "creator invoked exactly once" guarantee even on multi-threaded hosts.
type Table struct {
	creator CreatorFunc
	once    sync.Once
	routes  map[string]Thunk
}

// NewTable creates a route table from creator. The creator is not invoked
// until the first resolution.
func NewTable(creator CreatorFunc) *Table {
	return &Table{creator: creator}
}

// Resolve returns the definition thunk registered under name, materializing
// the table on first use. The presence check always runs against the
// materialized mapping, never before it.
func (t *Table) Resolve(name string) (Thunk, error) {
	t.once.Do(t.materialize)
	thunk, ok := t.routes[name]
	if !ok {
		return nil, &RouteNotFoundError{Name: name}
	}
	return thunk, nil
}

// Has reports whether name resolves without surfacing the error.
func (t *Table) Has(name string) bool {
	_, err := t.Resolve(name)
	return err == nil
}

func (t *Table) materialize() {
	t.routes = make(map[string]Thunk)
	if t.creator == nil {
		return
	}
	// Later keys overwrite earlier ones for the same name.
	for name, thunk := range t.creator() {
		t.routes[name] = thunk
	}
}
