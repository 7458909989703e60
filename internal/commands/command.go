// Package commands holds the fixed command set of the terminal: the command
// descriptors, the registry, the session state handlers act on, and the
// dispatcher that turns an input line into a CommandResult.
package commands

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/cmdline"
	"termfolio/internal/model"
)

// OperandKind tells tab completion what an operand position expects.
type OperandKind int

const (
	OperandFile OperandKind = iota
	OperandDirectory
	OperandProgram
	OperandString
	OperandOther
)

// Operand describes a positional argument.
type Operand struct {
	Name        string
	Description string
	Kind        OperandKind
}

// Option describes a flag or valued option.
type Option struct {
	Name        string
	Description string
	Kind        cmdline.ValueKind
}

// Handler runs a command. Handlers report failures through the result and
// never return Go errors.
type Handler interface {
	Run(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult

func (f HandlerFunc) Run(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
	return f(ctx, env, args)
}

// Command is an immutable command descriptor.
type Command struct {
	Name        string
	Description string
	Operands    []Operand
	Options     []Option
	Handler     Handler
}

// Schema returns the option schema used to parse the command's arguments.
func (c Command) Schema() cmdline.Schema {
	schema := make(cmdline.Schema, len(c.Options))
	for _, opt := range c.Options {
		schema[opt.Name] = opt.Kind
	}
	return schema
}

// OperandAt returns the declared operand for a position.
func (c Command) OperandAt(i int) (Operand, bool) {
	if i < 0 || i >= len(c.Operands) {
		return Operand{}, false
	}
	return c.Operands[i], true
}

func optionFlag(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}

// Manual renders the man page of the command from its descriptor.
func (c Command) Manual() string {
	synopsis := "  " + c.Name
	if len(c.Options) > 0 {
		synopsis += " [OPTION]..."
	}
	for _, op := range c.Operands {
		synopsis += " [" + op.Name + "]"
	}

	lines := []string{
		"NAME",
		fmt.Sprintf("  %s - %s", c.Name, c.Description),
		"SYNOPSIS",
		synopsis,
	}
	if len(c.Options) > 0 {
		lines = append(lines, "OPTIONS")
		for _, opt := range c.Options {
			lines = append(lines, fmt.Sprintf("  %s  %s", optionFlag(opt.Name), opt.Description))
		}
	}
	return strings.Join(lines, "\n")
}
