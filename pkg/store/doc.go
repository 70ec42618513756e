// Package store holds named template sources. A Store is constructed and owned
// by the caller; nothing in this module keeps a process-wide table. Entries are
// validated through an optional Validator (usually the rendering engine) before
// they are inserted, so syntax errors surface at registration time rather than
// on first render.
package store
