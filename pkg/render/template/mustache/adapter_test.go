package mustache_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-antennae/pkg/render/template"
	"github.com/goliatone/go-antennae/pkg/render/template/mustache"
)

func TestEngine_RenderInterpolates(t *testing.T) {
	engine := mustache.New()

	got, err := engine.Render("A name: {{name}}", map[string]any{"name": "Jan"}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "A name: Jan"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_RenderNilData(t *testing.T) {
	engine := mustache.New()

	got, err := engine.Render("A template", nil, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "A template" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderPartials(t *testing.T) {
	engine := mustache.New()
	partials := map[string]string{
		"item": "<li>{{.}}</li>",
	}

	got, err := engine.Render("<ul>{{#items}}{{> item}}{{/items}}</ul>", map[string]any{
		"items": []string{"a", "b"},
	}, partials)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<ul><li>a</li><li>b</li></ul>"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_UnknownPartialIsEmpty(t *testing.T) {
	engine := mustache.New()

	got, err := engine.Render("[{{> missing}}]", nil, map[string]string{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "[]" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_PartialCycle(t *testing.T) {
	engine := mustache.New(mustache.WithMaxPartials(5))
	partials := map[string]string{"loop": "x{{> loop}}"}

	_, err := engine.Render("x{{> loop}}", nil, partials)
	if !errors.Is(err, template.ErrPartialDepth) {
		t.Fatalf("expected ErrPartialDepth, got %v", err)
	}
}

func TestEngine_PartialCycleDefaultLimit(t *testing.T) {
	engine := mustache.New()
	partials := map[string]string{
		"a": "{{> b}}",
		"b": "{{> a}}",
	}

	_, err := engine.Render("{{> a}}", nil, partials)
	if !errors.Is(err, template.ErrPartialDepth) {
		t.Fatalf("expected ErrPartialDepth, got %v", err)
	}
}

func TestEngine_RecursivePartialTerminates(t *testing.T) {
	engine := mustache.New()
	partials := map[string]string{
		"node": "{{name}}{{#children}}({{> node}}){{/children}}",
	}
	data := map[string]any{
		"name": "root",
		"children": []any{
			map[string]any{"name": "a", "children": []any{
				map[string]any{"name": "a1", "children": []any{}},
			}},
			map[string]any{"name": "b", "children": []any{}},
		},
	}

	got, err := engine.Render("{{> node}}", data, partials)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "root(a(a1))(b)"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_Escaping(t *testing.T) {
	data := map[string]any{"html": "<b>bold</b>"}

	escaped, err := mustache.New().Render("{{html}}", data, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(escaped, "<b>") {
		t.Fatalf("expected escaped output, got %q", escaped)
	}

	raw, err := mustache.New(mustache.WithRaw()).Render("{{html}}", data, nil)
	if err != nil {
		t.Fatalf("render raw: %v", err)
	}
	if raw != "<b>bold</b>" {
		t.Fatalf("expected raw output, got %q", raw)
	}
}

func TestEngine_Parse(t *testing.T) {
	engine := mustache.New()

	if err := engine.Parse("Hello {{name}} {{> footer}}"); err != nil {
		t.Fatalf("expected valid template, got %v", err)
	}
	if err := engine.Parse("{{#open}}never closed"); err == nil {
		t.Fatalf("expected parse error for unclosed section")
	}
	if engine.Name() != mustache.Name {
		t.Fatalf("unexpected engine name %q", engine.Name())
	}
}
