package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Validator checks template source for syntax errors without rendering it.
// Every engine under pkg/render/template satisfies it.
type Validator interface {
	Parse(source string) error
}

// Option configures a Store during construction.
type Option func(*Store)

// WithValidator installs the parser used to validate content on Register.
// Without one, any content is accepted.
func WithValidator(v Validator) Option {
	return func(s *Store) {
		s.validator = v
	}
}

// Store maps template names to raw template source. Later registrations under
// the same name replace earlier ones. The zero value is not usable; construct
// stores with New.
//
// A Store can safely be used by multiple goroutines.
type Store struct {
	mu        sync.RWMutex
	templates map[string]string
	validator Validator
}

// New creates an empty store.
func New(options ...Option) *Store {
	s := &Store{
		templates: make(map[string]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Register validates content and stores it under name, replacing any previous
// entry. Content that fails validation is not stored and the previous entry, if
// any, is kept.
func (s *Store) Register(name, content string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	if s.validator != nil {
		if err := s.validator.Parse(content); err != nil {
			return &ParseError{Name: name, Err: err}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates[name] = content
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (s *Store) MustRegister(name, content string) {
	if err := s.Register(name, content); err != nil {
		panic(err)
	}
}

// Clear removes every registered template.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates = make(map[string]string)
}

// Has reports whether a template is registered under name.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.templates[name]
	return ok
}

// Get returns the source registered under name.
func (s *Store) Get(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return content, nil
}

// Names returns a sorted list of registered template names.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered templates.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.templates)
}

// Partials returns a copy of every registered template keyed by name. Engines
// receive it at render time so any template can include any other.
func (s *Store) Partials() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.templates))
	for name, content := range s.templates {
		out[name] = content
	}
	return out
}
