package render

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithOutputPolicy sanitizes every rendered string with policy. A nil policy
// leaves output untouched.
func WithOutputPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.policy = policy
	}
}

// WithLogger receives debug records for each render.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}
