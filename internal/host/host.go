// Package host defines the capability surface an editor host exposes to
// the copyline extension.
//
// The extension never talks to an editor directly. It receives a Context
// whose providers abstract the focused document, the cursor, workspace
// path resolution, the system clipboard, and user notifications. Any
// editor (or test) that implements these interfaces can host the
// extension.
package host

// Document schemes.
const (
	// SchemeFile marks a document backed by a file on disk.
	SchemeFile = "file"
	// SchemeUntitled marks a document that has never been saved.
	SchemeUntitled = "untitled"
)

// Document identifies an open document in the host.
type Document struct {
	// Scheme is the document's backing scheme (SchemeFile, SchemeUntitled).
	Scheme string

	// Path is the document's location. For SchemeFile this is a native
	// filesystem path; for SchemeUntitled it is a host-assigned name.
	Path string
}

// Saved reports whether the document has a durable location on disk.
func (d Document) Saved() bool {
	return d.Scheme == SchemeFile
}

// Editor provides access to the focused editor state.
type Editor interface {
	// ActiveDocument returns the focused document.
	// ok is false when no editor has focus.
	ActiveDocument() (doc Document, ok bool)

	// CursorLine returns the active cursor's 0-based line index.
	CursorLine() int
}

// Workspace resolves document paths against the current workspace root.
type Workspace interface {
	// Rel returns the workspace-relative form of path. When no workspace
	// root is active the path is returned unchanged.
	Rel(path string) string

	// Abs returns the native absolute form of path.
	Abs(path string) string
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	// Write replaces the clipboard contents with text.
	Write(text string) error

	// Read returns the current clipboard contents.
	Read() (string, error)
}

// NotificationLevel represents the severity of a notification.
type NotificationLevel string

const (
	// NotifyInfo is an informational notification.
	NotifyInfo NotificationLevel = "info"
	// NotifyWarning is a warning notification.
	NotifyWarning NotificationLevel = "warning"
	// NotifyError is an error notification.
	NotifyError NotificationLevel = "error"
)

// UI displays messages to the user.
type UI interface {
	// Notify shows a notification to the user.
	Notify(message string, level NotificationLevel) error
}

// Context bundles the host capabilities handed to the extension.
// A nil provider means the host does not offer that capability.
type Context struct {
	// Editor provides focused-document and cursor access.
	Editor Editor

	// Workspace provides path resolution.
	Workspace Workspace

	// Clipboard provides system clipboard access.
	Clipboard Clipboard

	// UI provides user notifications.
	UI UI
}
