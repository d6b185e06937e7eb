package panorama

import "fmt"

// Registry maps ids to entities of one type. The Engine owns one registry
// per entity type; it is filled while loading and consulted when rows
// reference each other by id.
type Registry[T any] struct {
	kind  string
	items map[string]T
	order []string
}

// NewRegistry creates an empty registry. kind names the entity type in
// error messages.
func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, items: make(map[string]T)}
}

// Put registers v under id, replacing any previous entry. An empty id is
// ignored.
func (r *Registry[T]) Put(id string, v T) {
	if id == "" {
		return
	}
	if _, ok := r.items[id]; !ok {
		r.order = append(r.order, id)
	}
	r.items[id] = v
}

// Get returns the entity registered under id.
func (r *Registry[T]) Get(id string) (T, bool) {
	v, ok := r.items[id]
	return v, ok
}

// Lookup is like Get but reports a missing id as an error wrapping
// ErrUnresolvedReference.
func (r *Registry[T]) Lookup(id string) (T, error) {
	v, ok := r.items[id]
	if !ok {
		return v, fmt.Errorf("panorama: %s %q: %w", r.kind, id, ErrUnresolvedReference)
	}
	return v, nil
}

// MustGet is like Lookup but panics on a missing id.
func (r *Registry[T]) MustGet(id string) T {
	v, err := r.Lookup(id)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether id is registered.
func (r *Registry[T]) Has(id string) bool {
	_, ok := r.items[id]
	return ok
}

// Delete removes id from the registry.
func (r *Registry[T]) Delete(id string) {
	if _, ok := r.items[id]; !ok {
		return
	}
	delete(r.items, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// All returns the registered entities in registration order.
func (r *Registry[T]) All() []T {
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

// IDs returns the registered ids in registration order.
func (r *Registry[T]) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered entities.
func (r *Registry[T]) Len() int {
	return len(r.order)
}
