package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"termfolio/internal/files"
	"termfolio/internal/model"
)

// ChannelOpener hands windows opened by command handlers to the UI loop.
type ChannelOpener struct {
	ch chan model.Window
}

// NewChannelOpener creates an opener with a small buffer.
func NewChannelOpener() *ChannelOpener {
	return &ChannelOpener{ch: make(chan model.Window, 8)}
}

// OpenWindow implements commands.WindowOpener. A window is dropped when the
// UI is not keeping up.
func (o *ChannelOpener) OpenWindow(w model.Window) {
	select {
	case o.ch <- w:
	default:
		slog.Warn("Dropping window, UI is not reading", "title", w.Title)
	}
}

// MsgWindow asks the UI to show a sub-window.
type MsgWindow model.Window

// MsgDocument carries the rendered page of a browser window.
type MsgDocument struct {
	URL     string
	Content string
	Err     error
}

func waitForWindow(o *ChannelOpener) tea.Cmd {
	if o == nil {
		return nil
	}
	return func() tea.Msg {
		return MsgWindow(<-o.ch)
	}
}

func isExternal(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// loadDocumentCmd fetches the page behind a browser window and renders it
// as markdown.
func loadDocumentCmd(ctx context.Context, svc files.Service, url string, exts []string, width int) tea.Cmd {
	return func() tea.Msg {
		if isExternal(url) {
			return MsgDocument{URL: url, Content: fmt.Sprintf("Open %s in your web browser.", url)}
		}

		var source string
		var err error
		for _, ext := range exts {
			source, err = svc.Read(ctx, model.SplitPath(url+"."+ext))
			if !errors.Is(err, files.ErrNoSuchPath) {
				break
			}
		}
		if err != nil {
			return MsgDocument{URL: url, Err: err}
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return MsgDocument{URL: url, Err: err}
		}
		out, err := r.Render(source)
		if err != nil {
			return MsgDocument{URL: url, Err: err}
		}
		return MsgDocument{URL: url, Content: out}
	}
}
