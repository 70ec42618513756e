package render

import (
	"io"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-antennae/internal/logx"
	"github.com/goliatone/go-antennae/pkg/render/template"
)

// Source provides template source and the partial set. *store.Store
// satisfies it.
type Source interface {
	Get(name string) (string, error)
	Partials() map[string]string
}

// Renderer renders stored templates by name. Nothing is cached between calls:
// every Render reads the current store contents.
type Renderer struct {
	source Source
	engine template.Engine
	policy *bluemonday.Policy
	logger *slog.Logger
}

// New constructs a Renderer over source using engine.
func New(source Source, engine template.Engine, options ...Option) (*Renderer, error) {
	if source == nil {
		return nil, ErrStoreRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	r := &Renderer{
		source: source,
		engine: engine,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.logger = logx.OrDiscard(r.logger)
	return r, nil
}

// MustNew is like New but panics when source or engine is missing.
func MustNew(source Source, engine template.Engine, options ...Option) *Renderer {
	r, err := New(source, engine, options...)
	if err != nil {
		panic(err)
	}
	return r
}

// Engine returns the engine templates are rendered with.
func (r *Renderer) Engine() template.Engine {
	return r.engine
}

// Render interpolates the template registered under name with data. The
// result is returned and also written to every writer in out.
func (r *Renderer) Render(name string, data any, out ...io.Writer) (string, error) {
	source, err := r.source.Get(name)
	if err != nil {
		return "", err
	}

	rendered, err := r.engine.Render(source, data, r.source.Partials())
	if err != nil {
		return "", err
	}
	if r.policy != nil {
		rendered = r.policy.Sanitize(rendered)
	}

	r.logger.Debug("rendered template", "name", name, "engine", r.engine.Name(), "bytes", len(rendered))

	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}
