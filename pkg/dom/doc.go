// Package dom describes the small slice of a host document that template
// discovery needs: enumerating elements by tag and reading their attributes
// and raw text. Keeping it behind interfaces lets the loader run against the
// x/net/html binding in htmldoc or against in-memory fakes in tests.
package dom
