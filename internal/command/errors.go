package command

import "errors"

// ErrNotFound is returned when executing a command that is not registered.
var ErrNotFound = errors.New("command not found")
