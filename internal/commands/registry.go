package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrDuplicateCommand = errors.New("duplicate command")

// Registry is the fixed, name-sorted table of commands.
type Registry struct {
	byName   map[string]*Command
	commands []Command
}

// NewRegistry builds a registry. Names are case-sensitive and must be unique.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{
		byName:   make(map[string]*Command, len(cmds)),
		commands: slices.Clone(cmds),
	}
	slices.SortFunc(r.commands, func(a, b Command) int {
		return strings.Compare(a.Name, b.Name)
	})

	for i := range r.commands {
		cmd := &r.commands[i]
		if cmd.Name == "" || cmd.Handler == nil {
			return nil, fmt.Errorf("commands: command %q has no name or handler", cmd.Name)
		}
		if _, exists := r.byName[cmd.Name]; exists {
			return nil, fmt.Errorf("commands: %q: %w", cmd.Name, ErrDuplicateCommand)
		}
		r.byName[cmd.Name] = cmd
	}
	return r, nil
}

// Lookup finds a command by its exact name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}
	return *cmd, true
}

// Commands returns all commands sorted by name.
func (r *Registry) Commands() []Command {
	return slices.Clone(r.commands)
}

// Names returns all command names sorted.
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		names[i] = cmd.Name
	}
	return names
}
