package command

import (
	"fmt"
	"sort"
	"sync"
)

// Registry provides access to registered commands by ID.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command

	// onChange callbacks are called when commands are added/removed.
	onChange []func()
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command to the registry.
// If a command with the same ID exists, it is replaced.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}
	if cmd.ID == "" {
		return fmt.Errorf("command ID cannot be empty")
	}
	if cmd.Title == "" {
		return fmt.Errorf("command title cannot be empty")
	}

	r.mu.Lock()
	r.commands[cmd.ID] = cmd
	r.mu.Unlock()

	r.notifyChange()
	return nil
}

// Unregister removes a command from the registry.
// Returns true if the command existed.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	_, exists := r.commands[id]
	if exists {
		delete(r.commands, id)
	}
	r.mu.Unlock()

	if exists {
		r.notifyChange()
	}
	return exists
}

// UnregisterBySource removes all commands from a specific source and
// returns how many were removed.
func (r *Registry) UnregisterBySource(source string) int {
	r.mu.Lock()
	count := 0
	for id, cmd := range r.commands {
		if cmd.Source == source {
			delete(r.commands, id)
			count++
		}
	}
	r.mu.Unlock()

	if count > 0 {
		r.notifyChange()
	}
	return count
}

// Get retrieves a command by ID, or nil if it is not registered.
func (r *Registry) Get(id string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[id]
}

// Has checks if a command exists.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.commands[id]
	return exists
}

// Execute runs a command by ID with arguments.
func (r *Registry) Execute(id string, args map[string]any) error {
	cmd := r.Get(id)
	if cmd == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cmd.Execute(args)
}

// All returns all registered commands sorted by title.
func (r *Registry) All() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Title < result[j].Title
	})
	return result
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// OnChange registers a callback invoked whenever the command set changes.
func (r *Registry) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = append(r.onChange, fn)
}

func (r *Registry) notifyChange() {
	r.mu.RLock()
	callbacks := make([]func(), len(r.onChange))
	copy(callbacks, r.onChange)
	r.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}
