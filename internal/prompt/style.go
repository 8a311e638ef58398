package prompt

import (
	"fmt"
	"strings"
)

// Style selects the instruction template and output shape for a message.
type Style string

const (
	StyleConventional Style = "conventional"
	StyleSimple       Style = "simple"
	StyleDetailed     Style = "detailed"
)

const DefaultStyle = StyleConventional

var styles = []Style{StyleConventional, StyleSimple, StyleDetailed}

// Styles returns the supported styles in display order.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

func (s Style) Valid() bool {
	for _, known := range styles {
		if s == known {
			return true
		}
	}
	return false
}

func (s Style) String() string {
	return string(s)
}

// ParseStyle validates a user-supplied style name. Matching is exact, the
// same way the flag and COMMIT_STYLE are documented.
func ParseStyle(name string) (Style, error) {
	s := Style(name)
	if !s.Valid() {
		return "", fmt.Errorf("invalid style %q. Must be one of: %s", name, styleList())
	}
	return s, nil
}

func styleList() string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
