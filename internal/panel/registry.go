package panel

import "fmt"

// Definition describes a panel that can be placed in the grid or footer.
type Definition struct {
	ID             string
	Title          string
	Closable       bool
	Maximizable    bool
	Fullscreenable bool
}

// New returns a main grid definition: closable and maximizable.
func New(id, title string) Definition {
	return Definition{
		ID:          id,
		Title:       title,
		Closable:    true,
		Maximizable: true,
	}
}

// Footer returns a footer definition: closable and fullscreenable.
func Footer(id, title string) Definition {
	return Definition{
		ID:             id,
		Title:          title,
		Closable:       true,
		Fullscreenable: true,
	}
}

// Registry holds definitions in registration order.
type Registry struct {
	defs  map[string]Definition
	order []string
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds def, replacing any definition with the same id while
// keeping its original position.
func (r *Registry) Register(def Definition) {
	if _, ok := r.defs[def.ID]; !ok {
		r.order = append(r.order, def.ID)
	}
	r.defs[def.ID] = def
}

func (r *Registry) RegisterAll(defs ...Definition) {
	for _, d := range defs {
		r.Register(d)
	}
}

func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Title returns the registered title, or the id itself for unknown panels.
func (r *Registry) Title(id string) string {
	if d, ok := r.defs[id]; ok && d.Title != "" {
		return d.Title
	}
	return id
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Definitions returns all definitions in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.defs)
}

// Remove deletes the definition for id and reports whether it existed.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.defs[id]; !ok {
		return false
	}
	delete(r.defs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Merge registers every definition of other on top of r.
func (r *Registry) Merge(other *Registry) {
	for _, d := range other.Definitions() {
		r.Register(d)
	}
}

// DefaultRegistry returns count numbered main grid panels.
func DefaultRegistry(count int) *Registry {
	r := NewRegistry()
	for i := 0; i < count; i++ {
		r.Register(New(MainID(i), fmt.Sprintf("Panel %d", i+1)))
	}
	return r
}

// DefaultFooterRegistry returns count numbered footer panels.
func DefaultFooterRegistry(count int) *Registry {
	r := NewRegistry()
	for i := 0; i < count; i++ {
		r.Register(Footer(FooterID(i), fmt.Sprintf("Footer %d", i+1)))
	}
	return r
}
