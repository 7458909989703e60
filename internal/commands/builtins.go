package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"termfolio/internal/cmdline"
	"termfolio/internal/model"
)

// DefaultAliases returns the static alias table.
func DefaultAliases() map[string]string {
	return map[string]string{
		"..":      "cd ..",
		"l":       "ls -lah",
		"la":      "ls -lAh",
		"ll":      "ls -lh",
		"lsa":     "ls -lah",
		"open":    "xdg-open",
		"apt-get": "apt",
	}
}

// Builtins returns the full command set.
func Builtins() []Command {
	return []Command{
		aliasCommand(),
		aptCommand(),
		catCommand(),
		cdCommand(),
		clearCommand(),
		codeCommand(),
		echoCommand(),
		helpCommand(),
		lsCommand(),
		manCommand(),
		xdgOpenCommand(),
	}
}

func aliasCommand() Command {
	return Command{
		Name:        "alias",
		Description: "show aliases",
		Handler: HandlerFunc(func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
			lines := make([]string, 0, env.Aliases.Len())
			for _, name := range env.Aliases.Names() {
				replacement, _ := env.Aliases.Lookup(name)
				lines = append(lines, fmt.Sprintf("  %-10s %s", name, replacement))
			}
			return model.Success(strings.Join(lines, "\n"))
		}),
	}
}

func clearCommand() Command {
	return Command{
		Name:        "clear",
		Description: "clear the terminal screen",
		Handler: HandlerFunc(func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
			return model.CommandResult{Invisible: true, ClearScreen: true}
		}),
	}
}

func codeCommand() Command {
	return Command{
		Name:        "code",
		Description: "open the source code in the browser",
		Handler: HandlerFunc(func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
			if env.Settings.Repository == "" {
				return model.Failure("code: no repository configured")
			}
			env.openWindow(model.Window{
				Kind:  model.WindowBrowser,
				Title: "code",
				URL:   env.Settings.Repository,
			})
			return model.Success("Opening Browser...")
		}),
	}
}

func echoCommand() Command {
	return Command{
		Name:        "echo",
		Description: "display a line of text",
		Operands: []Operand{
			{Name: "text", Description: "the text to display", Kind: OperandString},
		},
		Handler: HandlerFunc(func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
			return model.Success(strings.Join(args.Operands, " "))
		}),
	}
}

func helpCommand() Command {
	return Command{
		Name:        "help",
		Description: "print help",
		Handler: HandlerFunc(func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
			cmds := env.Registry.Commands()
			lines := make([]string, len(cmds))
			for i, cmd := range cmds {
				lines[i] = fmt.Sprintf("  %-10s %s", cmd.Name, cmd.Description)
			}
			return model.Success(strings.Join(lines, "\n"))
		}),
	}
}

func manCommand() Command {
	return Command{
		Name:        "man",
		Description: "an interface to the system reference manuals",
		Operands: []Operand{
			{Name: "page", Description: "name of the program, utility or function", Kind: OperandProgram},
		},
		Handler: HandlerFunc(func(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
			page, ok := args.Operand(0)
			if !ok {
				return model.Failure("What manual page do you want?\nFor example, try 'man man'.")
			}
			cmd, ok := env.Registry.Lookup(page)
			if !ok {
				return model.Success("No manual entry for " + page)
			}
			return model.Success(cmd.Manual())
		}),
	}
}

func aptCommand() Command {
	return Command{
		Name:        "apt",
		Description: "command-line interface",
		Operands: []Operand{
			{Name: "action", Description: "possible actions: install", Kind: OperandOther},
			{Name: "command", Description: "command to install", Kind: OperandOther},
		},
		Handler: HandlerFunc(runApt),
	}
}

func runApt(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
	action, ok := args.Operand(0)
	if !ok {
		return model.Success("apt: no action selected")
	}
	if action != "install" {
		return model.Success("apt: invalid operand " + action)
	}
	if env.Contact == nil {
		return model.Failure("apt: installation requests are disabled")
	}

	requested := strings.Join(args.Operands[1:], " ")
	if err := env.Contact.Notify(ctx, requested); err != nil {
		var contactErr *ContactError
		if errors.As(err, &contactErr) {
			return model.Failure("apt: " + contactErr.Body)
		}
		return model.Failure("apt: Error")
	}
	return model.Success("installation of the following commands was requested from the author: " + requested)
}
