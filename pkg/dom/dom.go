package dom

import "errors"

// ErrNoDocument is returned when template discovery runs without a host
// document to scan.
var ErrNoDocument = errors.New("dom: no document available")

// Document enumerates elements of a host document.
type Document interface {
	// ElementsByTagName returns every element with the given tag name in
	// document order. Tag names are matched case-insensitively.
	ElementsByTagName(tag string) []Element
}

// Presence is implemented by documents that can be empty values, such as a
// nil pointer held in a Document interface.
type Presence interface {
	// Present reports whether the document is backed by a parsed tree.
	Present() bool
}

// Available reports whether doc can be scanned. A nil interface and a
// document whose Present method returns false both count as missing.
func Available(doc Document) bool {
	if doc == nil {
		return false
	}
	if p, ok := doc.(Presence); ok {
		return p.Present()
	}
	return true
}

// Element is a read-only view of a single element. Implementations are only
// expected to stay valid while the owning Document is being scanned.
type Element interface {
	TagName() string
	// Attribute returns the attribute value and whether it was present.
	Attribute(name string) (string, bool)
	// Text returns the raw, unescaped text content of the element.
	Text() string
}
