// Package clipboard provides system clipboard access for copy operations.
package clipboard

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() *System {
	return &System{}
}

// Write replaces the clipboard contents with text.
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// Read returns the current clipboard contents.
func (s *System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}
