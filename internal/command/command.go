// Package command provides the registry user-invokable commands are
// registered into. Extensions register commands under stable string
// identifiers at activation and remove them by source at deactivation.
package command

import "fmt"

// Handler is a function that executes a command.
type Handler func(args map[string]any) error

// Command is a user-invokable action.
type Command struct {
	// ID is the stable command identifier (e.g. "copyline.copyRelativePath").
	ID string

	// Title is the human-readable name shown in menus.
	Title string

	// Description explains what the command does.
	Description string

	// Category groups related commands.
	Category string

	// Source identifies who registered the command, for scoped cleanup
	// (e.g. "extension:copyline").
	Source string

	// Handler executes the command.
	Handler Handler
}

// Execute runs the command's handler with the given arguments.
func (c *Command) Execute(args map[string]any) error {
	if c.Handler == nil {
		return fmt.Errorf("command %q has no handler", c.ID)
	}
	return c.Handler(args)
}
