package arraylias

import (
	"fmt"
	"reflect"
)

// Registry is one dispatch table: backend implementations by name, plus
// concrete array types associated with a backend name. Registration is
// push-only and must complete before concurrent reads begin.
type Registry struct {
	name     string
	backends map[string]Backend
	types    map[reflect.Type]string
	order    []reflect.Type
}

func New(name string) *Registry {
	return &Registry{
		name:     name,
		backends: make(map[string]Backend),
		types:    make(map[reflect.Type]string),
	}
}

func (r *Registry) Name() string { return r.name }

// RegisterBackend adds a backend implementation under its own name.
// Re-registering a name replaces the previous implementation.
func (r *Registry) RegisterBackend(b Backend) {
	r.backends[b.Name()] = b
}

// RegisterType associates the concrete type of sample with a backend
// name. Last write wins on conflicting re-registration.
func (r *Registry) RegisterType(sample Array, backend string) {
	rt := reflect.TypeOf(sample)
	if _, seen := r.types[rt]; !seen {
		r.order = append(r.order, rt)
	}
	r.types[rt] = backend
}

// Resolve returns the backend owning v's concrete type.
func (r *Registry) Resolve(v Array) (Backend, error) {
	rt := reflect.TypeOf(v)
	name, ok := r.types[rt]
	if !ok {
		return nil, fmt.Errorf("%w: %s (registry %q)", ErrUnregisteredType, rt, r.name)
	}
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registry %q)", ErrUnknownBackend, name, r.name)
	}
	return b, nil
}

// Linalg resolves v's backend and asserts the linear-algebra surface.
func (r *Registry) Linalg(v Array) (LinearAlgebra, error) {
	b, err := r.Resolve(v)
	if err != nil {
		return nil, err
	}
	la, ok := b.(LinearAlgebra)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no linear algebra", ErrNotImplemented, b.Name())
	}
	return la, nil
}

// Backend looks up a backend implementation by name.
func (r *Registry) Backend(name string) (Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registry %q)", ErrUnknownBackend, name, r.name)
	}
	return b, nil
}

// RegisteredTypes returns a snapshot of every concrete array type
// registered so far, in registration order. The slice does not update
// with later registrations.
func (r *Registry) RegisteredTypes() []reflect.Type {
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Backends returns the registered backend names, in no particular order.
func (r *Registry) Backends() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return names
}
