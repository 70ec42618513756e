package antennae

import (
	"github.com/goliatone/go-antennae/pkg/render"
	"github.com/goliatone/go-antennae/pkg/render/template/fasttpl"
	"github.com/goliatone/go-antennae/pkg/render/template/mustache"
	"github.com/goliatone/go-antennae/pkg/render/template/pongo"
)

// DefaultEngine is the engine name used when none is configured.
const DefaultEngine = mustache.Name

// Engines returns a registry holding the built-in engines: mustache, pongo2 and
// fasttemplate.
func Engines() (*render.Registry, error) {
	pongoEngine, err := pongo.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(mustache.New(), pongoEngine, fasttpl.New())
}
