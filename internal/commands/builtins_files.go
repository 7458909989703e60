package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"termfolio/internal/cmdline"
	"termfolio/internal/files"
	"termfolio/internal/model"
)

// Handlers of the commands that go through the file-access service.

const fakePermissions = "-rwxr--r--"

var extensionPattern = regexp.MustCompile(`\.(\w+)$`)

func cdCommand() Command {
	return Command{
		Name:        "cd",
		Description: "change the working directory",
		Operands: []Operand{
			{Name: "directory", Description: "the directory to change to", Kind: OperandDirectory},
		},
		Handler: HandlerFunc(runCd),
	}
}

func runCd(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
	target, ok := args.Operand(0)
	current := env.Session.Path()

	var next []string
	switch {
	case !ok:
		next = []string{}
	case target == ".":
		return model.CommandResult{}
	case target == "..":
		if len(current) == 0 {
			return model.CommandResult{}
		}
		next = current[:len(current)-1]
	default:
		next = model.ResolvePath(current, target)
	}

	if err := env.Session.ChangeDir(ctx, next); err != nil {
		switch {
		case errors.Is(err, files.ErrNoSuchPath):
			return model.Failure("cd: no such file or directory: " + target)
		case errors.Is(err, files.ErrNotADirectory):
			return model.Failure("cd: not a directory: " + target)
		default:
			slog.Warn("cd failed", "path", model.PathString(next), "error", err)
			return model.Failure("cd: Error")
		}
	}
	return model.CommandResult{}
}

func lsCommand() Command {
	return Command{
		Name:        "ls",
		Description: "list directory contents",
		Options: []Option{
			{Name: "l", Description: "use a long listing format", Kind: cmdline.ValueBoolean},
			{Name: "a", Description: "do not ignore entries starting with .", Kind: cmdline.ValueBoolean},
			{Name: "A", Description: "do not list implied . and ..", Kind: cmdline.ValueBoolean},
		},
		Handler: HandlerFunc(runLs),
	}
}

func runLs(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
	nodes, err := env.Session.Refresh(ctx)
	if err != nil {
		slog.Warn("ls failed", "path", model.PathString(env.Session.Path()), "error", err)
		return model.Failure("ls: Error")
	}

	switch {
	case args.Bool("A"):
		nodes = slices.DeleteFunc(nodes, model.Node.IsImplied)
	case !args.Bool("a"):
		nodes = slices.DeleteFunc(nodes, model.Node.IsHidden)
	}

	if args.Bool("l") {
		author := env.Settings.Author
		rows := make([][]model.Cell, len(nodes))
		for i, n := range nodes {
			rows[i] = []model.Cell{
				{Text: fakePermissions},
				{Text: author},
				{Text: author},
				model.CellForNode(n),
			}
		}
		return model.CommandResult{Output: model.Output{Rows: rows}}
	}

	flow := make([]model.Cell, len(nodes))
	for i, n := range nodes {
		flow[i] = model.CellForNode(n)
	}
	return model.CommandResult{Output: model.Output{Flow: flow}}
}

func catCommand() Command {
	return Command{
		Name:        "cat",
		Description: "concatenate files and print on the standard output",
		Operands: []Operand{
			{Name: "file(s)", Description: "Concatenate FILE(s) to standard output.", Kind: OperandFile},
		},
		Handler: HandlerFunc(runCat),
	}
}

func runCat(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
	if len(args.Operands) == 0 {
		return model.Failure("cat: Missing operand")
	}

	current := env.Session.Path()
	var out strings.Builder
	for _, file := range args.Operands {
		contents, err := env.Session.Files().Read(ctx, model.ResolvePath(current, file))
		if err != nil {
			// All or nothing: contents read so far are dropped.
			return readFailure("cat", file, err)
		}
		out.WriteString(contents)
	}
	return model.Success(out.String())
}

func xdgOpenCommand() Command {
	return Command{
		Name:        "xdg-open",
		Description: "opens a file in the user's preferred application",
		Operands: []Operand{
			{Name: "file", Description: "the file to open", Kind: OperandFile},
		},
		Handler: HandlerFunc(runXdgOpen),
	}
}

func runXdgOpen(ctx context.Context, env *Env, args cmdline.Args) model.CommandResult {
	file, ok := args.Operand(0)
	if !ok {
		return model.Failure("xdg-open: Missing operand")
	}
	target := model.ResolvePath(env.Session.Path(), file)

	if m := extensionPattern.FindStringSubmatch(file); m != nil && slices.Contains(env.Settings.DocumentExtensions, m[1]) {
		env.openWindow(model.Window{
			Kind:  model.WindowBrowser,
			Title: file,
			URL:   strings.TrimSuffix(model.PathString(target), "."+m[1]),
		})
		return model.Success("Opening Browser...")
	}

	contents, err := env.Session.Files().Read(ctx, target)
	if err != nil {
		return readFailure("xdg-open", file, err)
	}
	env.openWindow(model.Window{
		Kind:    model.WindowTextViewer,
		Title:   file,
		Content: contents,
	})
	return model.Success("Opening TextViewer...")
}

// readFailure converts a Read error into the command's error message.
func readFailure(command, file string, err error) model.CommandResult {
	switch {
	case errors.Is(err, files.ErrNoSuchPath):
		return model.Failure(fmt.Sprintf("%s: %s: No such file or directory", command, file))
	case errors.Is(err, files.ErrNotAFile):
		return model.Failure(fmt.Sprintf("%s: %s: Is a directory", command, file))
	default:
		slog.Warn("Read failed", "command", command, "file", file, "error", err)
		return model.Failure(command + ": Error")
	}
}
