package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-antennae/pkg/render/template"
)

// Registry stores engines by name so configuration can pick one with a
// string.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]template.Engine
}

// NewRegistry creates a registry holding the given engines.
func NewRegistry(engines ...template.Engine) (*Registry, error) {
	r := &Registry{
		engines: make(map[string]template.Engine),
	}
	for _, engine := range engines {
		if err := r.Register(engine); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds an engine by its Name(). Duplicate names return an error.
func (r *Registry) Register(engine template.Engine) error {
	if engine == nil {
		return fmt.Errorf("render: engine is required")
	}
	name := strings.ToLower(strings.TrimSpace(engine.Name()))
	if name == "" {
		return fmt.Errorf("render: engine name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("render: engine %q already registered", name)
	}
	r.engines[name] = engine
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(engine template.Engine) {
	if err := r.Register(engine); err != nil {
		panic(err)
	}
}

// Get retrieves an engine by name, ignoring case.
func (r *Registry) Get(name string) (template.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, ok := r.engines[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("render: engine %q not found", name)
	}
	return engine, nil
}

// List returns a sorted list of engine names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an engine is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.engines[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
