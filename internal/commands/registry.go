package commands

import (
	"fmt"
	"strings"
)

// Registry is an ordered, case-insensitive command table. It is built fresh
// for every dispatch, so it carries no lock.
type Registry struct {
	order []string
	specs map[string]*Spec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds spec. Returns an error if the name is empty or already registered.
func (r *Registry) Register(spec Spec) error {
	if spec.Name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	key := strings.ToLower(spec.Name)
	if _, exists := r.specs[key]; exists {
		return fmt.Errorf("command %s already registered", spec.Name)
	}
	s := spec
	r.specs[key] = &s
	r.order = append(r.order, key)
	return nil
}

// Get returns the spec registered under name, ignoring case.
func (r *Registry) Get(name string) (*Spec, bool) {
	spec, ok := r.specs[strings.ToLower(name)]
	return spec, ok
}

// IsValidCommand reports whether name is registered.
func (r *Registry) IsValidCommand(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, key := range r.order {
		names = append(names, r.specs[key].Name)
	}
	return names
}

// Specs returns the registered specs in registration order.
func (r *Registry) Specs() []*Spec {
	specs := make([]*Spec, 0, len(r.order))
	for _, key := range r.order {
		specs = append(specs, r.specs[key])
	}
	return specs
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}
