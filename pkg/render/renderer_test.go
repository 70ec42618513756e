package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-antennae/pkg/render"
	"github.com/goliatone/go-antennae/pkg/render/template/mustache"
	"github.com/goliatone/go-antennae/pkg/store"
)

func newRenderer(t *testing.T, options ...render.Option) (*render.Renderer, *store.Store) {
	t.Helper()

	engine := mustache.New()
	st := store.New(store.WithValidator(engine))
	r, err := render.New(st, engine, options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r, st
}

func TestRenderer_Render(t *testing.T) {
	r, st := newRenderer(t)
	st.MustRegister("greeting", "A name: {{name}}")

	var buf bytes.Buffer
	got, err := r.Render("greeting", map[string]any{"name": "Jan"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "A name: Jan"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}
	if buf.String() != got {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", got, buf.String())
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, _ := newRenderer(t)

	_, err := r.Render("", map[string]any{})
	if !errors.Is(err, store.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestRenderer_PartialsComeFromStore(t *testing.T) {
	r, st := newRenderer(t)
	st.MustRegister("page", "<main>{{> greeting}}</main>")
	st.MustRegister("greeting", "Hi {{name}}")

	got, err := r.Render("page", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<main>Hi Ada</main>"; got != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, got)
	}

	st.MustRegister("greeting", "Bye {{name}}")
	got, err = r.Render("page", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<main>Bye Ada</main>"; got != want {
		t.Fatalf("expected updated partial\nwant: %q\n got: %q", want, got)
	}
}

func TestRenderer_OutputPolicy(t *testing.T) {
	policy, err := render.PolicyByName("ugc")
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	r, st := newRenderer(t, render.WithOutputPolicy(policy))
	st.MustRegister("comment", "<p>{{{body}}}</p>")

	got, err := r.Render("comment", map[string]any{"body": `hi<script>alert(1)</script>`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script") {
		t.Fatalf("expected script to be stripped, got %q", got)
	}
	if !strings.Contains(got, "<p>hi") {
		t.Fatalf("expected paragraph to survive, got %q", got)
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := render.New(nil, mustache.New()); !errors.Is(err, render.ErrStoreRequired) {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
	if _, err := render.New(store.New(), nil); !errors.Is(err, render.ErrEngineRequired) {
		t.Fatalf("expected ErrEngineRequired, got %v", err)
	}
}

func TestMustNew(t *testing.T) {
	if r := render.MustNew(store.New(), mustache.New()); r.Engine().Name() != mustache.Name {
		t.Fatalf("unexpected engine %q", r.Engine().Name())
	}

	defer func() {
		recovered := recover()
		err, ok := recovered.(error)
		if !ok || !errors.Is(err, render.ErrEngineRequired) {
			t.Fatalf("expected panic with ErrEngineRequired, got %v", recovered)
		}
	}()
	render.MustNew(store.New(), nil)
}

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"", "none", "NONE"} {
		policy, err := render.PolicyByName(name)
		if err != nil || policy != nil {
			t.Fatalf("PolicyByName(%q) = %v, %v; want nil, nil", name, policy, err)
		}
	}
	for _, name := range []string{"strict", "ugc"} {
		policy, err := render.PolicyByName(name)
		if err != nil || policy == nil {
			t.Fatalf("PolicyByName(%q) = %v, %v; want policy", name, policy, err)
		}
	}
	if _, err := render.PolicyByName("lenient"); !errors.Is(err, render.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}
