// Package fasttpl adapts github.com/valyala/fasttemplate to the
// template.Engine contract. It performs plain placeholder substitution:
// {{path.to.value}} looks a value up in the data and {{> name}} inlines
// another registered template. There are no sections or escaping.
package fasttpl

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"

	"github.com/goliatone/go-antennae/pkg/render/template"
)

// Name is the engine identifier used in configuration.
const Name = "fasttemplate"

const defaultMaxDepth = 16

// Option configures the adapter.
type Option func(*Engine)

// WithTags overrides the placeholder delimiters.
func WithTags(start, end string) Option {
	return func(e *Engine) {
		if start != "" && end != "" {
			e.startTag, e.endTag = start, end
		}
	}
}

// WithMaxDepth bounds nested partial expansion.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// Engine substitutes placeholders using fasttemplate.
type Engine struct {
	startTag string
	endTag   string
	maxDepth int
}

var _ template.Engine = (*Engine)(nil)

// New constructs an engine with "{{" / "}}" delimiters.
func New(options ...Option) *Engine {
	e := &Engine{
		startTag: "{{",
		endTag:   "}}",
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Name returns "fasttemplate".
func (e *Engine) Name() string {
	return Name
}

// Parse reports unterminated placeholders.
func (e *Engine) Parse(source string) error {
	if _, err := fasttemplate.NewTemplate(source, e.startTag, e.endTag); err != nil {
		return fmt.Errorf("fasttpl: %w", err)
	}
	return nil
}

// Render substitutes placeholders in source. Missing values render as empty
// strings; missing partials are an error.
func (e *Engine) Render(source string, data any, partials map[string]string) (string, error) {
	values, err := normalize(data)
	if err != nil {
		return "", fmt.Errorf("fasttpl: convert data: %w", err)
	}
	return e.render(source, values, partials, 0)
}

func (e *Engine) render(source string, values any, partials map[string]string, depth int) (string, error) {
	if depth > e.maxDepth {
		return "", fmt.Errorf("fasttpl: %w: nested deeper than %d", template.ErrPartialDepth, e.maxDepth)
	}

	tmpl, err := fasttemplate.NewTemplate(source, e.startTag, e.endTag)
	if err != nil {
		return "", fmt.Errorf("fasttpl: %w", err)
	}

	var buf bytes.Buffer
	_, err = tmpl.ExecuteFunc(&buf, func(w io.Writer, tag string) (int, error) {
		tag = strings.TrimSpace(tag)
		if name, ok := strings.CutPrefix(tag, ">"); ok {
			name = strings.TrimSpace(name)
			partial, found := partials[name]
			if !found {
				return 0, fmt.Errorf("fasttpl: partial %q not registered", name)
			}
			out, err := e.render(partial, values, partials, depth+1)
			if err != nil {
				return 0, err
			}
			return io.WriteString(w, out)
		}

		value, ok := lookup(values, tag)
		if !ok || value == nil {
			return 0, nil
		}
		return io.WriteString(w, fmt.Sprint(value))
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// lookup resolves a dotted path; "." refers to the data itself.
func lookup(values any, path string) (any, bool) {
	if path == "." {
		return values, true
	}
	current := values
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// normalize turns arbitrary data into the map/slice/scalar shapes produced by
// JSON decoding so lookup only deals with map[string]any.
func normalize(data any) (any, error) {
	switch v := data.(type) {
	case nil:
		return map[string]any{}, nil
	case string, bool, float64:
		return v, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
