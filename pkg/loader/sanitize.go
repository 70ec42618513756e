package loader

import (
	"strings"
	"unicode"
)

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// Sanitize strips outer whitespace and an optional CDATA wrapper from raw
// element text. Only a leading opener and the final closer are removed, and
// interior whitespace and newlines are preserved. Whitespace is anything
// unicode.IsSpace accepts plus the byte order mark.
func Sanitize(raw string) string {
	body := trimSpace(raw)
	if len(body) >= len(cdataOpen) && strings.EqualFold(body[:len(cdataOpen)], cdataOpen) {
		body = trimSpace(body[len(cdataOpen):])
	}
	if trimmed, ok := strings.CutSuffix(body, cdataClose); ok {
		body = trimSpace(trimmed)
	}
	return body
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
