package commands

import (
	"context"

	"termfolio/internal/cmdline"
	"termfolio/internal/model"
)

// WindowOpener opens sub-windows. Calls are fire-and-forget.
type WindowOpener interface {
	OpenWindow(w model.Window)
}

// WindowFunc adapts a function to WindowOpener.
type WindowFunc func(w model.Window)

func (f WindowFunc) OpenWindow(w model.Window) { f(w) }

// Notifier delivers "apt install" requests to the site author.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Settings are the static, configuration driven values handlers use.
type Settings struct {
	Author             string   // Owner and group shown by ls -l
	Repository         string   // URL opened by code
	DocumentExtensions []string // Extensions xdg-open shows in the browser
}

// Env is passed to every handler.
type Env struct {
	Session  *Session
	Registry *Registry
	Aliases  *cmdline.Aliases
	Windows  WindowOpener
	Contact  Notifier
	Settings Settings
}

func (e *Env) openWindow(w model.Window) {
	if e.Windows != nil {
		e.Windows.OpenWindow(w)
	}
}
