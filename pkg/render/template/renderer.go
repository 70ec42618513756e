package template

// Engine parses and renders template source. Implementations must be
// deterministic and free of side effects visible to callers.
type Engine interface {
	// Name identifies the engine in configuration and logs.
	Name() string

	// Parse reports syntax errors in source without rendering it.
	Parse(source string) error

	// Render interpolates source with data. Partials maps template names to
	// source so templates can include each other by name.
	Render(source string, data any, partials map[string]string) (string, error)
}
