package loader_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-antennae/pkg/dom"
	"github.com/goliatone/go-antennae/pkg/dom/htmldoc"
	"github.com/goliatone/go-antennae/pkg/loader"
	"github.com/goliatone/go-antennae/pkg/store"
)

type fakeElement struct {
	attrs map[string]string
	text  string
}

func (e fakeElement) TagName() string { return "script" }

func (e fakeElement) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e fakeElement) Text() string { return e.text }

type fakeDocument []dom.Element

func (d fakeDocument) ElementsByTagName(tag string) []dom.Element {
	if tag != "script" {
		return nil
	}
	return d
}

func script(text string, attrs map[string]string) dom.Element {
	return fakeElement{attrs: attrs, text: text}
}

func TestLoad_RequiresDocument(t *testing.T) {
	t.Parallel()

	err := loader.Load(nil, store.New())
	require.ErrorIs(t, err, dom.ErrNoDocument)
}

func TestLoad_RequiresPresentDocument(t *testing.T) {
	t.Parallel()

	var missing *htmldoc.Document
	reg := store.New()

	require.ErrorIs(t, loader.Load(missing, reg), dom.ErrNoDocument)
	require.ErrorIs(t, loader.Load(htmldoc.FromNode(nil), reg), dom.ErrNoDocument)
	assert.Zero(t, reg.Len())

	require.NoError(t, loader.Load(fakeDocument{}, reg))
}

func TestLoad_RequiresRegistrar(t *testing.T) {
	t.Parallel()

	err := loader.Load(fakeDocument{}, nil)
	require.Error(t, err)
}

func TestLoad_SkipsNonTemplateTypes(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("", map[string]string{"type": "text/javascript", "id": "template-1"}),
		script("", map[string]string{"id": "template-2"}),
	}

	require.NoError(t, loader.Load(doc, st))

	assert.False(t, st.Has("template-1"))
	assert.False(t, st.Has("template-2"))
}

func TestLoad_AcceptsBothMarkers(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("", map[string]string{"type": "text/html", "id": "template-1"}),
		script("", map[string]string{"type": "x-tmpl-mustache", "id": "template-2"}),
		script("", map[string]string{"type": " Text/HTML ", "id": "template-3"}),
	}

	require.NoError(t, loader.Load(doc, st))

	assert.Equal(t, []string{"template-1", "template-2", "template-3"}, st.Names())
}

func TestLoad_IgnoreAttribute(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("", map[string]string{"type": "text/html", "id": "ignored", "data-ignore": "yes"}),
		script("", map[string]string{"type": "text/html", "id": "explicit-false", "data-ignore": "false"}),
		script("", map[string]string{"type": "text/html", "id": "empty", "data-ignore": ""}),
	}

	require.NoError(t, loader.Load(doc, st))

	assert.False(t, st.Has("ignored"))
	assert.True(t, st.Has("explicit-false"))
	assert.True(t, st.Has("empty"))
}

func TestLoad_NamePrecedence(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("a", map[string]string{"type": "text/html", "data-name": "template-1"}),
		script("b", map[string]string{"type": "text/html", "id": "template-2"}),
		script("c", map[string]string{"type": "text/html", "data-name": "named", "id": "by-id"}),
		script("d", map[string]string{"type": "text/html", "data-name": "  ", "id": "fallback"}),
	}

	require.NoError(t, loader.Load(doc, st))

	assert.Equal(t, []string{"fallback", "named", "template-1", "template-2"}, st.Names())
	assert.False(t, st.Has("by-id"))
}

func TestLoad_MissingNameStopsScan(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("first", map[string]string{"type": "text/html", "id": "first"}),
		script("anonymous", map[string]string{"type": "text/html"}),
		script("third", map[string]string{"type": "text/html", "id": "third"}),
	}

	err := loader.Load(doc, st)

	require.ErrorIs(t, err, store.ErrInvalidName)
	assert.Contains(t, err.Error(), "script element 1")
	assert.True(t, st.Has("first"), "earlier registrations remain")
	assert.False(t, st.Has("third"), "scan stops at the failing element")
}

func TestLoad_SanitizesContent(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("\n\t<![CDATA[\n\t\tA template\n\t]]>\n", map[string]string{"type": "text/html", "id": "template-1"}),
	}

	require.NoError(t, loader.Load(doc, st))

	got, err := st.Get("template-1")
	require.NoError(t, err)
	assert.Equal(t, "A template", got)
}

func TestLoad_Processor(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script(" body ", map[string]string{"type": "text/html", "id": "wrapped", "data-wrap": "section"}),
	}

	var seen []string
	err := loader.Load(doc, st, loader.WithProcessorFunc(func(content, name string, el dom.Element) string {
		seen = append(seen, name)
		tag, _ := el.Attribute("data-wrap")
		return "<" + tag + ">" + content + "</" + tag + ">"
	}))
	require.NoError(t, err)

	got, err := st.Get("wrapped")
	require.NoError(t, err)
	assert.Equal(t, "<section>body</section>", got)
	assert.Equal(t, []string{"wrapped"}, seen)
}

func TestLoad_CustomAttributes(t *testing.T) {
	t.Parallel()

	st := store.New()
	doc := fakeDocument{
		script("x", map[string]string{"type": "text/x-template", "data-template": "custom"}),
		script("y", map[string]string{"type": "text/html", "id": "html"}),
		script("z", map[string]string{"type": "text/x-template", "data-template": "skipped", "data-skip": "1"}),
	}

	err := loader.Load(doc, st,
		loader.WithTypes("text/x-template"),
		loader.WithNameAttributes("data-template"),
		loader.WithIgnoreAttribute("data-skip"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"custom"}, st.Names())
}

func TestLoad_PropagatesRegistrarErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	reg := registrarFunc(func(name, content string) error { return boom })
	doc := fakeDocument{
		script("x", map[string]string{"type": "text/html", "id": "a"}),
	}

	err := loader.Load(doc, reg)
	require.ErrorIs(t, err, boom)
}

func TestLoad_Idempotent(t *testing.T) {
	t.Parallel()

	doc, err := htmldoc.ParseString(`
		<script type="text/html" id="a">A {{x}}</script>
		<script type="x-tmpl-mustache" data-name="b"><![CDATA[B]]></script>
	`)
	require.NoError(t, err)

	once := store.New()
	require.NoError(t, loader.Load(doc, once))

	twice := store.New()
	require.NoError(t, loader.Load(doc, twice))
	require.NoError(t, loader.Load(doc, twice))

	assert.Equal(t, once.Partials(), twice.Partials())
}

func TestLoad_LogsDiscoveries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc := fakeDocument{
		script("js", map[string]string{"type": "text/javascript"}),
		script("tpl", map[string]string{"type": "text/html", "id": "tpl"}),
	}
	require.NoError(t, loader.Load(doc, store.New(), loader.WithLogger(logger)))

	out := buf.String()
	assert.True(t, strings.Contains(out, "skipping script element"))
	assert.True(t, strings.Contains(out, "name=tpl"))
}

type registrarFunc func(name, content string) error

func (f registrarFunc) Register(name, content string) error {
	return f(name, content)
}
