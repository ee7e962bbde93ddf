package backend

import (
	"fmt"
	"sort"
)

// Backend describes a single storage backend type.
type Backend struct {
	Name       string
	DiskBacked bool
}

// Module is the interface a backend family implements to be registered.
type Module interface {
	Register(r *Registry) error
}

// Registry holds the known backends of a single generator instance.
type Registry struct {
	backends map[string]Backend
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Default returns a registry populated with the built-in Yokan backends.
func Default() *Registry {
	r := New()
	if err := (&Yokan{}).Register(r); err != nil {
		// The built-in table has no duplicates; anything else is a programmer error.
		panic(err)
	}
	return r
}

// Register adds a backend. Names must be unique.
func (r *Registry) Register(b Backend) error {
	if b.Name == "" {
		return fmt.Errorf("backend name cannot be empty")
	}
	if _, exists := r.backends[b.Name]; exists {
		return fmt.Errorf("backend %q is already registered", b.Name)
	}
	r.backends[b.Name] = b
	return nil
}

// Lookup returns the backend registered under name.
func (r *Registry) Lookup(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}

// IsDiskBacked reports whether name refers to a registered disk-backed backend.
// Unknown names are treated as in-memory.
func (r *Registry) IsDiskBacked(name string) bool {
	b, ok := r.backends[name]
	return ok && b.DiskBacked
}

// Names returns all registered backend names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
