// Package pongo adapts github.com/flosch/pongo2/v6 to the template.Engine
// contract. Templates use Django syntax; {% include "name" %} pulls in another
// registered template.
package pongo

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/goccy/go-json"

	"github.com/goliatone/go-antennae/pkg/render/template"
)

// Name is the engine identifier used in configuration.
const Name = "pongo2"

const defaultMaxIncludes = 10000

// FilterFunc is the signature accepted by WithFilter.
type FilterFunc func(input any, param any) (any, error)

// Option configures the pongo2 adapter before construction.
type Option func(*config)

type config struct {
	filters     map[string]FilterFunc
	globalData  map[string]any
	maxIncludes int
}

// WithFilter registers a template filter when the engine is constructed.
// pongo2 filters are process wide; registering a name twice fails.
func WithFilter(name string, fn FilterFunc) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]FilterFunc)
		}
		cfg.filters[strings.TrimSpace(name)] = fn
	}
}

// WithGlobalData seeds global context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithMaxIncludes bounds how many templates a single Render may include.
func WithMaxIncludes(limit int) Option {
	return func(cfg *config) {
		if limit > 0 {
			cfg.maxIncludes = limit
		}
	}
}

// Engine renders pongo2 templates. A fresh template set is built for every
// call so partial changes in the store are never served from a stale cache.
type Engine struct {
	mu          sync.RWMutex
	globals     pongo2.Context
	maxIncludes int
}

var _ template.Engine = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{maxIncludes: defaultMaxIncludes}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	engine := &Engine{
		globals:     pongo2.Context{},
		maxIncludes: cfg.maxIncludes,
	}
	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("pongo: apply global data: %w", err)
	}
	for name, fn := range cfg.filters {
		if err := RegisterFilter(name, fn); err != nil {
			return nil, err
		}
	}
	return engine, nil
}

// Name returns "pongo2".
func (e *Engine) Name() string {
	return Name
}

// Parse validates source. Includes resolve to empty templates so references
// to templates registered later do not fail validation.
func (e *Engine) Parse(source string) error {
	set := e.newSet(&partialLoader{lenient: true, limit: e.maxIncludes})
	if _, err := set.FromString(source); err != nil {
		return fmt.Errorf("pongo: parse: %w", err)
	}
	return nil
}

// Render interpolates source with data. {% include %} tags resolve against
// partials; including an unknown name is an error, and so is including more
// templates than the configured limit (template.ErrPartialDepth).
func (e *Engine) Render(source string, data any, partials map[string]string) (string, error) {
	loader := &partialLoader{partials: partials, limit: e.maxIncludes}
	set := e.newSet(loader)

	tmpl, err := set.FromString(source)
	if err != nil {
		return "", loader.wrap("parse", err)
	}

	viewContext, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("pongo: convert data: %w", err)
	}

	out, err := tmpl.Execute(viewContext)
	if err != nil {
		return "", loader.wrap("execute", err)
	}
	return out, nil
}

// GlobalContext merges data into the values every template can see.
func (e *Engine) GlobalContext(data any) error {
	if e == nil {
		return errors.New("pongo: engine is nil")
	}
	if data == nil {
		return nil
	}

	globalCtx, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.globals.Update(globalCtx)
	return nil
}

func (e *Engine) newSet(loader pongo2.TemplateLoader) *pongo2.TemplateSet {
	set := pongo2.NewSet("antennae", loader)

	e.mu.RLock()
	defer e.mu.RUnlock()

	set.Globals = make(pongo2.Context, len(e.globals))
	set.Globals.Update(e.globals)
	return set
}

// RegisterFilter registers a process wide pongo2 filter.
func RegisterFilter(name string, fn FilterFunc) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q already exists", name)
	}

	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// partialLoader serves included templates from the store snapshot. Static
// includes are parsed as soon as they are read, so a template including
// itself keeps calling Get; the count stops it.
type partialLoader struct {
	partials map[string]string
	lenient  bool
	limit    int
	loaded   int
	exceeded bool
}

func (l *partialLoader) Abs(_, name string) string {
	return name
}

func (l *partialLoader) Get(path string) (io.Reader, error) {
	l.loaded++
	if l.limit > 0 && l.loaded > l.limit {
		l.exceeded = true
		return nil, fmt.Errorf("pongo: include %q: %w", path, template.ErrPartialDepth)
	}
	if source, ok := l.partials[path]; ok {
		return strings.NewReader(source), nil
	}
	if l.lenient {
		return strings.NewReader(""), nil
	}
	return nil, fmt.Errorf("pongo: template %q not registered", path)
}

// wrap reports err from stage. pongo2 errors do not unwrap, so a tripped
// include limit is surfaced as template.ErrPartialDepth explicitly.
func (l *partialLoader) wrap(stage string, err error) error {
	if l.exceeded {
		return fmt.Errorf("pongo: %s: %w: more than %d includes", stage, template.ErrPartialDepth, l.limit)
	}
	return fmt.Errorf("pongo: %s: %w", stage, err)
}

// toContext turns render data into a pongo2 context. Maps are used as is;
// anything else goes through a JSON round trip so struct tags name the keys.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
