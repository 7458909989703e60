package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/files"
	"termfolio/internal/model"
	"termfolio/internal/terminal"
)

// Options configures the TUI.
type Options struct {
	Files              files.Service
	Windows            *ChannelOpener
	Welcome            string   // Command run on start, empty for none
	DocumentExtensions []string // Tried in order when a browser window loads a page
}

// AppModel holds the TUI state.
type AppModel struct {
	ctx  context.Context
	opts Options

	Terminal   *terminal.Terminal
	WindowSize tea.WindowSizeMsg
	Err        error

	// Components
	Scrollback viewport.Model

	// Sub-window state
	Window        *model.Window
	WindowView    viewport.Model
	WindowLoading bool
}

// InitialModel returns the initial state.
func InitialModel(ctx context.Context, term *terminal.Terminal, opts Options) AppModel {
	if len(opts.DocumentExtensions) == 0 {
		opts.DocumentExtensions = []string{"md"}
	}
	return AppModel{
		ctx:        ctx,
		opts:       opts,
		Terminal:   term,
		Scrollback: viewport.New(80, 24),
		WindowView: viewport.New(60, 20),
	}
}
