package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/model"
	"termfolio/internal/terminal"
)

// MsgCommandDone carries the result of a submission executed off the loop.
type MsgCommandDone struct {
	Submission *terminal.Submission
	Result     model.CommandResult
}

// MsgReady indicates the working directory listing was loaded.
type MsgReady struct{ Err error }

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Scrollback.Width = msg.Width
		m.Scrollback.Height = msg.Height
		w, h := windowSize(msg.Width, msg.Height)
		m.WindowView.Width = w - 4  // border + padding
		m.WindowView.Height = h - 4 // border, title, footer
		m.refresh()
		return m, nil

	case MsgReady:
		if msg.Err != nil {
			slog.Warn("Could not load working directory", "error", msg.Err)
		}
		return m, nil

	case MsgCommandDone:
		next := m.Terminal.Complete(msg.Submission, msg.Result)
		m.refresh()
		return m, m.execute(next)

	case MsgWindow:
		w := model.Window(msg)
		m.Window = &w
		m.WindowView.GotoTop()
		cmds := []tea.Cmd{waitForWindow(m.opts.Windows)}
		switch w.Kind {
		case model.WindowTextViewer:
			m.WindowLoading = false
			m.WindowView.SetContent(w.Content)
		case model.WindowBrowser:
			m.WindowLoading = true
			m.WindowView.SetContent("")
			cmds = append(cmds, loadDocumentCmd(m.ctx, m.opts.Files, w.URL, m.opts.DocumentExtensions, m.WindowView.Width))
		}
		return m, tea.Batch(cmds...)

	case MsgDocument:
		// The window may have been closed or replaced meanwhile.
		if m.Window == nil || m.Window.URL != msg.URL {
			return m, nil
		}
		m.WindowLoading = false
		if msg.Err != nil {
			m.WindowView.SetContent("Could not load page: " + msg.Err.Error())
		} else {
			m.WindowView.SetContent(msg.Content)
		}
		return m, nil

	case tea.KeyMsg:
		if m.Window != nil {
			return m.updateWindow(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit) && m.Terminal.Buffer() == "":
			return m, tea.Quit
		case key.Matches(msg, keys.ScrollUp):
			m.Scrollback.HalfPageUp()
			return m, nil
		case key.Matches(msg, keys.ScrollDown):
			m.Scrollback.HalfPageDown()
			return m, nil
		}

		text := ""
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			text = string(msg.Runes)
		}
		sub := m.Terminal.HandleKey(terminal.KeyFromName(msg.String(), text))
		m.refresh()
		return m, m.execute(sub)

	case tea.MouseMsg:
		m.Scrollback, cmd = m.Scrollback.Update(msg)
		return m, cmd
	}

	return m, cmd
}

func (m AppModel) updateWindow(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.CloseWindow):
		m.Window = nil
		m.WindowLoading = false
	case key.Matches(msg, keys.WindowUp):
		m.WindowView.ScrollUp(1)
	case key.Matches(msg, keys.WindowDown):
		m.WindowView.ScrollDown(1)
	case key.Matches(msg, keys.WindowPgUp):
		m.WindowView.PageUp()
	case key.Matches(msg, keys.WindowPgDown):
		m.WindowView.PageDown()
	}
	return m, nil
}

// execute runs a submission in the background.
func (m AppModel) execute(sub *terminal.Submission) tea.Cmd {
	if sub == nil {
		return nil
	}
	ctx, term := m.ctx, m.Terminal
	return func() tea.Msg {
		return MsgCommandDone{Submission: sub, Result: term.Execute(ctx, sub)}
	}
}

// refresh re-renders the scrollback and keeps the prompt in view.
func (m *AppModel) refresh() {
	m.Scrollback.SetContent(m.renderTerminal())
	m.Scrollback.GotoBottom()
}

// Init loads the listing, runs the welcome command and starts listening
// for windows.
func (m AppModel) Init() tea.Cmd {
	ctx, term := m.ctx, m.Terminal
	cmds := []tea.Cmd{
		func() tea.Msg { return MsgReady{Err: term.Init(ctx)} },
		waitForWindow(m.opts.Windows),
	}
	if m.opts.Welcome != "" {
		cmds = append(cmds, m.execute(term.Submit(m.opts.Welcome)))
	}
	return tea.Batch(cmds...)
}
