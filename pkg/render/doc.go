// Package render looks templates up in a store and hands them, together with
// every other registered template as a partial, to a template.Engine. It also
// keeps a name-keyed registry of engines and optional bluemonday policies
// applied to rendered output.
package render
