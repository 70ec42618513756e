// Package htmldoc binds the dom capability interfaces to documents parsed with
// golang.org/x/net/html.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-antennae/pkg/dom"
)

// Document wraps a parsed HTML node tree.
type Document struct {
	root *html.Node
}

var (
	_ dom.Document = (*Document)(nil)
	_ dom.Presence = (*Document)(nil)
)

// Parse reads an HTML document. Parsing follows the HTML5 algorithm, so
// fragments and malformed markup still produce a usable tree.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("htmldoc: reader is nil")
	}
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// FromNode wraps an already parsed node tree. A nil root yields a document
// that reports itself as not present.
func FromNode(root *html.Node) *Document {
	return &Document{root: root}
}

// Present reports whether d wraps a node tree. It is safe on a nil receiver.
func (d *Document) Present() bool {
	return d != nil && d.root != nil
}

// ElementsByTagName walks the tree depth first and collects matching elements.
func (d *Document) ElementsByTagName(tag string) []dom.Element {
	if !d.Present() {
		return nil
	}
	tag = strings.ToLower(strings.TrimSpace(tag))

	var out []dom.Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
			out = append(out, Element{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Element is a dom.Element backed by an *html.Node.
type Element struct {
	node *html.Node
}

var _ dom.Element = Element{}

// TagName returns the lower-cased tag name.
func (e Element) TagName() string {
	return e.node.Data
}

// Attribute looks up an attribute ignoring case; the HTML parser already
// lower-cases attribute keys.
func (e Element) Attribute(name string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// Text concatenates the text children of the element. Script content is kept
// as raw text by the tokenizer, so markup inside a template survives intact.
func (e Element) Text() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// Node exposes the underlying node, for processors that need to inspect the
// surrounding tree.
func (e Element) Node() *html.Node {
	return e.node
}
