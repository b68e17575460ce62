package extension

import "errors"

// Extension errors. All are scoped to a single invocation and surface to
// the user as notifications, never to the host as failures.
var (
	// ErrNoActiveEditor is returned when no document is focused.
	ErrNoActiveEditor = errors.New("no active editor")

	// ErrUnsavedDocument is returned when the focused document has no
	// backing file on disk.
	ErrUnsavedDocument = errors.New("document has no backing file")

	// ErrNoClipboard is returned when the host offers no clipboard.
	ErrNoClipboard = errors.New("host provides no clipboard")
)
