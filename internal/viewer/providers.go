package viewer

import (
	"path/filepath"
	"strings"

	"copyline/internal/host"
)

// Workspace resolves paths against a fixed root directory.
// It is the viewer's host.Workspace implementation; the headless mode
// reuses it.
type Workspace struct {
	// Root is the workspace root. Empty means no workspace is active and
	// relative resolution passes paths through unchanged.
	Root string
}

// Rel returns path relative to the root. Paths outside the root, or any
// path when no root is set, come back unchanged.
func (w Workspace) Rel(path string) string {
	if w.Root == "" {
		return path
	}
	rel, err := filepath.Rel(w.Root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

// Abs returns the native absolute form of path.
func (w Workspace) Abs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// ActiveDocument implements host.Editor. The viewed file is always the
// active document and is always saved.
func (v *Viewer) ActiveDocument() (host.Document, bool) {
	return host.Document{Scheme: host.SchemeFile, Path: v.path}, true
}

// CursorLine implements host.Editor with the highlighted 0-based line.
func (v *Viewer) CursorLine() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cursor
}

// Notify implements host.UI by showing the message on the bottom line.
func (v *Viewer) Notify(message string, level host.NotificationLevel) error {
	v.mu.Lock()
	v.notice = notice{text: message, level: level}
	v.mu.Unlock()
	v.draw()
	return nil
}
