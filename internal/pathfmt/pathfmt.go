// Package pathfmt renders document paths with cursor line numbers.
package pathfmt

import (
	"fmt"
	"strings"

	"copyline/internal/host"
)

// Mode selects how the document path is rendered.
type Mode uint8

const (
	// Relative renders the path relative to the workspace root.
	Relative Mode = iota

	// Absolute renders the native absolute path.
	Absolute
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "relative", "rel":
		return Relative, nil
	case "absolute", "abs":
		return Absolute, nil
	default:
		return Relative, fmt.Errorf("unknown path mode %q", s)
	}
}

// Format renders "path:line". Lines below 1 are clamped to 1 so a caller
// passing a raw 0-based index or a negative value still produces a valid
// location.
func Format(path string, line int) string {
	if line < 1 {
		line = 1
	}
	return fmt.Sprintf("%s:%d", path, line)
}

// Resolve renders the document path according to mode using the host's
// workspace resolver. A nil workspace leaves the path untouched.
func Resolve(ws host.Workspace, path string, mode Mode) string {
	if ws == nil {
		return path
	}
	if mode == Absolute {
		return ws.Abs(path)
	}
	return ws.Rel(path)
}
