package commands

import (
	"context"
	"errors"
	"log/slog"

	"termfolio/internal/cmdline"
	"termfolio/internal/files"
	"termfolio/internal/model"
)

// Options configures a Dispatcher.
type Options struct {
	Files    files.Service
	Windows  WindowOpener
	Contact  Notifier
	Settings Settings

	// Aliases defaults to DefaultAliases, Commands to Builtins.
	Aliases  map[string]string
	Commands []Command
}

// Dispatcher resolves input lines to commands and runs them.
type Dispatcher struct {
	registry *Registry
	aliases  *cmdline.Aliases
	env      *Env
}

// New builds a dispatcher with a fresh session at the content root.
func New(opts Options) (*Dispatcher, error) {
	if opts.Files == nil {
		return nil, errors.New("commands: a file service is required")
	}

	cmds := opts.Commands
	if cmds == nil {
		cmds = Builtins()
	}
	registry, err := NewRegistry(cmds...)
	if err != nil {
		return nil, err
	}

	table := opts.Aliases
	if table == nil {
		table = DefaultAliases()
	}
	aliases, err := cmdline.NewAliases(table)
	if err != nil {
		return nil, err
	}

	if len(opts.Settings.DocumentExtensions) == 0 {
		opts.Settings.DocumentExtensions = []string{"md"}
	}
	if opts.Settings.Author == "" {
		opts.Settings.Author = "guest"
	}

	return &Dispatcher{
		registry: registry,
		aliases:  aliases,
		env: &Env{
			Session:  NewSession(opts.Files),
			Registry: registry,
			Aliases:  aliases,
			Windows:  opts.Windows,
			Contact:  opts.Contact,
			Settings: opts.Settings,
		},
	}, nil
}

// Session returns the session handlers act on.
func (d *Dispatcher) Session() *Session { return d.env.Session }

// Registry returns the command registry.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Aliases returns the alias table.
func (d *Dispatcher) Aliases() *cmdline.Aliases { return d.aliases }

// Dispatch runs one input line. It never fails: unknown commands, parse
// errors and handler panics all come back as error results. A line without
// any word is a no-op that is kept out of history.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) (result model.CommandResult) {
	resolved, err := d.aliases.Resolve(raw)
	if err != nil {
		return parseFailure(raw, err)
	}
	tokens, err := cmdline.Split(resolved)
	if err != nil {
		return parseFailure(raw, err)
	}
	if len(tokens) == 0 {
		return model.CommandResult{SkipHistory: true}
	}

	name := tokens[0]
	cmd, ok := d.registry.Lookup(name)
	if !ok {
		slog.Info("Command not found", "command", name)
		return model.Failure("command not found: " + name)
	}

	args := cmdline.ParseArgs(tokens[1:], cmd.Schema())
	slog.Debug("Dispatching command",
		"command", name,
		"operands", args.Operands,
		"flags", args.Flags,
	)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command handler panicked",
				"command", name,
				"panic", r,
			)
			result = model.Failure(name + ": Error")
		}
	}()

	result = cmd.Handler.Run(ctx, d.env, args)
	if result.Error {
		slog.Info("Command failed",
			"command", name,
			"output", result.Output.String(),
		)
	}
	return result
}

func parseFailure(raw string, err error) model.CommandResult {
	slog.Info("Could not parse input", "input", raw, "error", err)
	return model.Failure("termfolio: parse error: " + err.Error())
}
