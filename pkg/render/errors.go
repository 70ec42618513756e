package render

import "errors"

var (
	// ErrStoreRequired is returned when a Renderer is built without a store.
	ErrStoreRequired = errors.New("render: template store is required")
	// ErrEngineRequired is returned when a Renderer is built without an engine.
	ErrEngineRequired = errors.New("render: template engine is required")
	// ErrUnknownPolicy is returned by PolicyByName for unrecognised names.
	ErrUnknownPolicy = errors.New("render: unknown output policy")
)
