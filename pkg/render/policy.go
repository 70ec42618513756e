package render

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Output policy names accepted by PolicyByName.
const (
	PolicyNone   = "none"
	PolicyStrict = "strict"
	PolicyUGC    = "ugc"
)

// PolicyByName returns the bluemonday policy registered under name. "none" and
// the empty string return a nil policy, which disables output sanitizing.
func PolicyByName(name string) (*bluemonday.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyNone:
		return nil, nil
	case PolicyStrict:
		return bluemonday.StrictPolicy(), nil
	case PolicyUGC:
		return bluemonday.UGCPolicy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
