package antennae

import (
	"context"
	"io"
	"io/fs"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-antennae/internal/logx"
	"github.com/goliatone/go-antennae/pkg/dom"
	"github.com/goliatone/go-antennae/pkg/dom/htmldoc"
	"github.com/goliatone/go-antennae/pkg/loader"
	"github.com/goliatone/go-antennae/pkg/render"
	"github.com/goliatone/go-antennae/pkg/render/template"
	"github.com/goliatone/go-antennae/pkg/render/template/mustache"
	"github.com/goliatone/go-antennae/pkg/store"
)

var (
	// ErrInvalidName is returned when a template has no usable name.
	ErrInvalidName = store.ErrInvalidName
	// ErrUnknownTemplate is returned when rendering an unregistered name.
	ErrUnknownTemplate = store.ErrUnknownTemplate
	// ErrNoDocument is returned when loading without a document.
	ErrNoDocument = dom.ErrNoDocument
	// ErrPartialDepth is returned when rendering expands partials without
	// end, typically a template that includes itself.
	ErrPartialDepth = template.ErrPartialDepth
)

// ParseError reports template source the engine refused to parse.
type ParseError = store.ParseError

// TemplateProcessor rewrites discovered template content before registration.
type TemplateProcessor = loader.TemplateProcessor

// ProcessorFunc adapts a function to TemplateProcessor.
type ProcessorFunc = loader.ProcessorFunc

// Option customises a Templates value.
type Option func(*Templates)

// WithEngine selects the template engine. Defaults to mustache.
func WithEngine(engine template.Engine) Option {
	return func(t *Templates) {
		if engine != nil {
			t.engine = engine
		}
	}
}

// WithLogger routes debug records from loading and rendering to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Templates) {
		t.logger = logger
	}
}

// WithOutputPolicy sanitizes rendered output with a bluemonday policy.
func WithOutputPolicy(policy *bluemonday.Policy) Option {
	return func(t *Templates) {
		t.policy = policy
	}
}

// WithLoaderOptions sets options applied to every Load call before the
// per-call options.
func WithLoaderOptions(options ...loader.Option) Option {
	return func(t *Templates) {
		t.loaderOptions = append(t.loaderOptions, options...)
	}
}

// Templates owns a template store and renders from it.
type Templates struct {
	engine        template.Engine
	logger        *slog.Logger
	policy        *bluemonday.Policy
	loaderOptions []loader.Option

	store    *store.Store
	renderer *render.Renderer
}

// New constructs an empty Templates value.
func New(options ...Option) *Templates {
	t := &Templates{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	if t.engine == nil {
		t.engine = mustache.New()
	}
	t.logger = logx.OrDiscard(t.logger)
	t.store = store.New(store.WithValidator(t.engine))

	t.renderer = render.MustNew(t.store, t.engine,
		render.WithOutputPolicy(t.policy),
		render.WithLogger(t.logger),
	)
	return t
}

// Store exposes the underlying template store.
func (t *Templates) Store() *store.Store {
	return t.store
}

// Engine returns the engine templates are validated and rendered with.
func (t *Templates) Engine() template.Engine {
	return t.engine
}

// Register validates content with the engine and stores it under name.
func (t *Templates) Register(name, content string) error {
	return t.store.Register(name, content)
}

// MustRegister panics when Register fails.
func (t *Templates) MustRegister(name, content string) {
	t.store.MustRegister(name, content)
}

// Clear removes every registered template.
func (t *Templates) Clear() {
	t.store.Clear()
}

// Has reports whether name is registered.
func (t *Templates) Has(name string) bool {
	return t.store.Has(name)
}

// Names lists registered templates in sorted order.
func (t *Templates) Names() []string {
	return t.store.Names()
}

// Load registers every template script element found in doc.
func (t *Templates) Load(doc dom.Document, options ...loader.Option) error {
	opts := make([]loader.Option, 0, len(t.loaderOptions)+len(options)+1)
	opts = append(opts, loader.WithLogger(t.logger))
	opts = append(opts, t.loaderOptions...)
	opts = append(opts, options...)
	return loader.Load(doc, t.store, opts...)
}

// LoadHTML parses an HTML document from r and loads its templates.
func (t *Templates) LoadHTML(r io.Reader, options ...loader.Option) error {
	doc, err := htmldoc.Parse(r)
	if err != nil {
		return err
	}
	return t.Load(doc, options...)
}

// LoadFile parses the HTML document at path and loads its templates.
func (t *Templates) LoadFile(ctx context.Context, path string, options ...loader.Option) error {
	doc, err := htmldoc.ParseFile(ctx, path)
	if err != nil {
		return err
	}
	return t.Load(doc, options...)
}

// LoadFS parses the HTML document name inside fsys and loads its templates.
func (t *Templates) LoadFS(ctx context.Context, fsys fs.FS, name string, options ...loader.Option) error {
	doc, err := htmldoc.ParseFS(ctx, fsys, name)
	if err != nil {
		return err
	}
	return t.Load(doc, options...)
}

// Render interpolates the template registered under name with data. Every
// registered template is available as a partial. The result is also written to
// each writer in out.
func (t *Templates) Render(name string, data any, out ...io.Writer) (string, error) {
	return t.renderer.Render(name, data, out...)
}
