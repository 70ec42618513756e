// Package template defines the engine contract the render facade delegates to
// and hosts the engine adapters (mustache, pongo, fasttpl). Engines are
// stateless with respect to the template store: every call receives the
// source and the full partial set explicitly.
package template
