// Package extension implements the copy-path-with-line editor extension.
//
// It contributes two commands: one copies the active document's
// workspace-relative path with the cursor's 1-based line number to the
// system clipboard, the other copies the absolute path. Every outcome,
// success or failure, is reported to the user through the host's
// notification surface; nothing propagates to the host as an error.
package extension

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"copyline/internal/command"
	"copyline/internal/host"
	"copyline/internal/l10n"
	"copyline/internal/logging"
	"copyline/internal/pathfmt"
)

// Command identifiers registered at activation.
const (
	CmdCopyRelativePath = "copyline.copyRelativePath"
	CmdCopyAbsolutePath = "copyline.copyAbsolutePath"
)

// Source tags every registration for scoped cleanup at deactivation.
const Source = "extension:copyline"

// EditorContext is the editor state captured at invocation: the active
// document's path and the cursor's 1-based line. It lives for a single
// invocation and is never shared.
type EditorContext struct {
	Path string
	Line int
}

// Extension wires the host capabilities into the two copy commands.
type Extension struct {
	hostctx host.Context
	t       l10n.Lookup
	log     *logging.Logger
}

// Option configures an Extension.
type Option func(*Extension)

// WithLogger sets the extension's logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Extension) {
		if log != nil {
			e.log = log.WithComponent("extension")
		}
	}
}

// New creates the extension against the given host capabilities.
// lookup resolves user-facing message templates.
func New(hostctx host.Context, lookup l10n.Lookup, opts ...Option) *Extension {
	e := &Extension{
		hostctx: hostctx,
		t:       lookup,
		log:     logging.NullLogger,
	}
	if e.t == nil {
		e.t = l10n.New("").T
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Activate registers both commands with the host registry.
// A failed registration rolls back anything already registered.
func (e *Extension) Activate(reg *command.Registry) error {
	cmds := []*command.Command{
		{
			ID:          CmdCopyRelativePath,
			Title:       "Copy Relative Path with Line Number",
			Description: "Copy the workspace-relative path of the current file with the cursor line",
			Category:    "File",
			Source:      Source,
			Handler: func(map[string]any) error {
				e.CopyRelativePathWithLine()
				return nil
			},
		},
		{
			ID:          CmdCopyAbsolutePath,
			Title:       "Copy Absolute Path with Line Number",
			Description: "Copy the absolute path of the current file with the cursor line",
			Category:    "File",
			Source:      Source,
			Handler: func(map[string]any) error {
				e.CopyAbsolutePathWithLine()
				return nil
			},
		},
	}

	for _, cmd := range cmds {
		if err := reg.Register(cmd); err != nil {
			reg.UnregisterBySource(Source)
			return fmt.Errorf("registering %s: %w", cmd.ID, err)
		}
	}

	e.log.Info("copyline extension activated")
	return nil
}

// Deactivate removes every command the extension registered.
// Safe to call without a preceding Activate.
func (e *Extension) Deactivate(reg *command.Registry) {
	removed := reg.UnregisterBySource(Source)
	e.log.Info("copyline extension deactivated, removed %d commands", removed)
}

// CopyRelativePathWithLine copies the active document's workspace-relative
// path with the cursor line to the clipboard.
func (e *Extension) CopyRelativePathWithLine() {
	e.copy(pathfmt.Relative)
}

// CopyAbsolutePathWithLine copies the active document's absolute path with
// the cursor line to the clipboard.
func (e *Extension) CopyAbsolutePathWithLine() {
	e.copy(pathfmt.Absolute)
}

// copy runs the full pipeline for one invocation: read editor state,
// format, write to the clipboard, report the outcome.
func (e *Extension) copy(mode pathfmt.Mode) {
	log := e.log.WithField("invocation", uuid.New().String())

	ectx, err := e.editorContext()
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveEditor):
			e.notify(e.t("noActiveEditor"), host.NotifyWarning)
		case errors.Is(err, ErrUnsavedDocument):
			e.notify(e.t("unsavedDocument"), host.NotifyWarning)
		}
		log.Debug("copy aborted: %v", err)
		return
	}

	path := pathfmt.Resolve(e.hostctx.Workspace, ectx.Path, mode)
	formatted := pathfmt.Format(path, ectx.Line)

	if err := e.writeClipboard(formatted); err != nil {
		log.Error("clipboard write failed: %v", err)
		e.notify(e.t("copyFailed", err), host.NotifyError)
		return
	}

	log.Debug("copied %q (%s)", formatted, mode)
	e.notify(e.t("copied", formatted), host.NotifyInfo)
}

// editorContext reads the focused document and cursor from the host,
// converting the host's 0-based cursor line to the 1-based line users see.
func (e *Extension) editorContext() (EditorContext, error) {
	if e.hostctx.Editor == nil {
		return EditorContext{}, ErrNoActiveEditor
	}
	doc, ok := e.hostctx.Editor.ActiveDocument()
	if !ok {
		return EditorContext{}, ErrNoActiveEditor
	}
	if !doc.Saved() {
		return EditorContext{}, fmt.Errorf("%w: %s", ErrUnsavedDocument, doc.Path)
	}
	return EditorContext{
		Path: doc.Path,
		Line: e.hostctx.Editor.CursorLine() + 1,
	}, nil
}

// writeClipboard returns the underlying cause unwrapped; the cause text is
// what the user sees in the failure notification.
func (e *Extension) writeClipboard(text string) error {
	if e.hostctx.Clipboard == nil {
		return ErrNoClipboard
	}
	return e.hostctx.Clipboard.Write(text)
}

func (e *Extension) notify(msg string, level host.NotificationLevel) {
	if e.hostctx.UI == nil {
		return
	}
	if err := e.hostctx.UI.Notify(msg, level); err != nil {
		e.log.Warn("notify failed: %v", err)
	}
}
