package loader

import (
	"log/slog"
	"strings"

	"github.com/goliatone/go-antennae/pkg/dom"
)

const (
	// TypeHTML is the generic template marker.
	TypeHTML = "text/html"
	// TypeMustache marks mustache templates explicitly.
	TypeMustache = "x-tmpl-mustache"

	// DefaultIgnoreAttribute excludes an otherwise qualifying element.
	DefaultIgnoreAttribute = "data-ignore"

	tagScript = "script"
)

// DefaultNameAttributes lists the attributes consulted for a template name, in
// order of precedence.
func DefaultNameAttributes() []string {
	return []string{"data-name", "id"}
}

// DefaultTypes lists the accepted template markers.
func DefaultTypes() []string {
	return []string{TypeHTML, TypeMustache}
}

// TemplateProcessor rewrites template content after sanitizing and before
// registration.
type TemplateProcessor interface {
	ProcessTemplate(content, name string, element dom.Element) string
}

// ProcessorFunc adapts a plain function to TemplateProcessor.
type ProcessorFunc func(content, name string, element dom.Element) string

// ProcessTemplate calls f.
func (f ProcessorFunc) ProcessTemplate(content, name string, element dom.Element) string {
	return f(content, name, element)
}

// Option configures a Load call.
type Option func(*config)

type config struct {
	types           map[string]struct{}
	ignoreAttribute string
	nameAttributes  []string
	processor       TemplateProcessor
	logger          *slog.Logger
}

func newConfig(options []Option) *config {
	cfg := &config{
		ignoreAttribute: DefaultIgnoreAttribute,
		nameAttributes:  DefaultNameAttributes(),
	}
	WithTypes(DefaultTypes()...)(cfg)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// WithTypes replaces the accepted type markers. Markers are compared
// case-insensitively. Passing no usable marker keeps the defaults.
func WithTypes(types ...string) Option {
	return func(cfg *config) {
		accepted := make(map[string]struct{}, len(types))
		for _, typ := range types {
			typ = normalizeType(typ)
			if typ == "" {
				continue
			}
			accepted[typ] = struct{}{}
		}
		if len(accepted) == 0 {
			return
		}
		cfg.types = accepted
	}
}

// WithIgnoreAttribute overrides the attribute that excludes an element.
func WithIgnoreAttribute(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.ignoreAttribute = trimmed
		}
	}
}

// WithNameAttributes overrides the attributes used to name a template, in
// order of precedence.
func WithNameAttributes(names ...string) Option {
	return func(cfg *config) {
		var attrs []string
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				attrs = append(attrs, trimmed)
			}
		}
		if len(attrs) > 0 {
			cfg.nameAttributes = attrs
		}
	}
}

// WithProcessor installs a content transform applied to every discovered
// template.
func WithProcessor(p TemplateProcessor) Option {
	return func(cfg *config) {
		cfg.processor = p
	}
}

// WithProcessorFunc is shorthand for WithProcessor(ProcessorFunc(fn)).
func WithProcessorFunc(fn func(content, name string, element dom.Element) string) Option {
	return func(cfg *config) {
		if fn == nil {
			cfg.processor = nil
			return
		}
		cfg.processor = ProcessorFunc(fn)
	}
}

// WithLogger receives debug records for discovered and skipped elements.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

func normalizeType(typ string) string {
	return strings.ToLower(strings.TrimSpace(typ))
}
