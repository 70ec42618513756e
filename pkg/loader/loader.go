package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-antennae/internal/logx"
	"github.com/goliatone/go-antennae/pkg/dom"
)

// Registrar receives discovered templates. *store.Store satisfies it.
type Registrar interface {
	Register(name, content string) error
}

// Load scans doc for template script elements and registers each one with reg
// in document order.
//
// The scan stops at the first failing element and returns its error; templates
// registered before it stay registered. An element without a name reaches the
// registrar with an empty name, so the registrar's own name error is what the
// caller sees. A nil doc, or one reporting dom.Presence false, fails with
// dom.ErrNoDocument.
func Load(doc dom.Document, reg Registrar, options ...Option) error {
	if !dom.Available(doc) {
		return dom.ErrNoDocument
	}
	if reg == nil {
		return errors.New("loader: registrar is required")
	}

	cfg := newConfig(options)
	log := logx.OrDiscard(cfg.logger)

	registered := 0
	for i, element := range doc.ElementsByTagName(tagScript) {
		if !cfg.qualifies(element) {
			log.Debug("skipping script element", "index", i)
			continue
		}

		name := cfg.templateName(element)
		content := Sanitize(element.Text())
		if cfg.processor != nil {
			content = cfg.processor.ProcessTemplate(content, name, element)
		}

		if err := reg.Register(name, content); err != nil {
			return fmt.Errorf("loader: script element %d: %w", i, err)
		}
		registered++
		log.Debug("registered template", "name", name, "index", i)
	}

	log.Debug("template scan complete", "registered", registered)
	return nil
}

func (cfg *config) qualifies(element dom.Element) bool {
	typ, ok := element.Attribute("type")
	if !ok {
		return false
	}
	if _, accepted := cfg.types[normalizeType(typ)]; !accepted {
		return false
	}
	return !cfg.ignored(element)
}

func (cfg *config) ignored(element dom.Element) bool {
	value, ok := element.Attribute(cfg.ignoreAttribute)
	if !ok {
		return false
	}
	return isTruthy(value)
}

func (cfg *config) templateName(element dom.Element) string {
	for _, attr := range cfg.nameAttributes {
		value, ok := element.Attribute(attr)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
