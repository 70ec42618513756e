// Package mustache adapts github.com/cbroglie/mustache to the template.Engine
// contract. It is the default engine: variables are HTML escaped unless
// triple-braced, and {{> name}} includes another registered template.
package mustache

import (
	"fmt"

	"github.com/cbroglie/mustache"

	"github.com/goliatone/go-antennae/pkg/render/template"
)

// Name is the engine identifier used in configuration.
const Name = "mustache"

const defaultMaxPartials = 10000

// Option configures the adapter.
type Option func(*Engine)

// WithRaw disables HTML escaping of {{var}} interpolations.
func WithRaw() Option {
	return func(e *Engine) {
		e.raw = true
	}
}

// WithMaxPartials bounds how many partials a single Render may expand.
func WithMaxPartials(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.maxPartials = limit
		}
	}
}

// Engine renders mustache templates.
type Engine struct {
	raw         bool
	maxPartials int
}

var _ template.Engine = (*Engine)(nil)

// New constructs a mustache engine.
func New(options ...Option) *Engine {
	e := &Engine{maxPartials: defaultMaxPartials}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Name returns "mustache".
func (e *Engine) Name() string {
	return Name
}

// Parse validates source. Partials are resolved against an empty set, which
// mustache treats as empty content, so references to templates registered
// later do not fail validation.
func (e *Engine) Parse(source string) error {
	if _, err := mustache.ParseStringPartialsRaw(source, &mustache.StaticProvider{}, e.raw); err != nil {
		return fmt.Errorf("mustache: %w", err)
	}
	return nil
}

// Render interpolates source with data, resolving {{> name}} against
// partials. Unknown partials render as empty strings. Expanding more partials
// than the configured limit fails with template.ErrPartialDepth.
func (e *Engine) Render(source string, data any, partials map[string]string) (string, error) {
	provider := &boundedProvider{partials: partials, limit: e.maxPartials}
	tmpl, err := mustache.ParseStringPartialsRaw(source, provider, e.raw)
	if err != nil {
		return "", fmt.Errorf("mustache: %w", err)
	}

	var out string
	if data == nil {
		out, err = tmpl.Render()
	} else {
		out, err = tmpl.Render(data)
	}
	if err != nil {
		return "", fmt.Errorf("mustache: render: %w", err)
	}
	return out, nil
}

// boundedProvider serves partials for one Render call. mustache resolves
// partials lazily while rendering, so a self-including template calls Get
// without end; the expansion count stops it.
type boundedProvider struct {
	partials map[string]string
	limit    int
	expanded int
}

func (p *boundedProvider) Get(name string) (string, error) {
	p.expanded++
	if p.expanded > p.limit {
		return "", fmt.Errorf("%w: %q after %d expansions", template.ErrPartialDepth, name, p.limit)
	}
	return p.partials[name], nil
}
