package template

import "errors"

// ErrPartialDepth is returned when an engine expands more partials than its
// limit allows. It almost always means templates include each other in a
// cycle.
var ErrPartialDepth = errors.New("template: partial limit exceeded")
