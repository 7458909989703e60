package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/model"
	"termfolio/internal/terminal"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	promptErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	directoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

func (m AppModel) View() string {
	if m.Err != nil {
		return "\n  Error: " + m.Err.Error() + "\n"
	}
	if m.Window != nil {
		return m.renderWindow()
	}
	return m.Scrollback.View()
}

func styleCell(c model.Cell) string {
	if c.Kind == model.CellDirectory {
		return directoryStyle.Render(c.Text)
	}
	return c.Text
}

func renderPrompt(path []string, failed bool) string {
	arrow := promptOKStyle
	if failed {
		arrow = promptErrStyle
	}
	return arrow.Render(model.IconPrompt) + "  " + pathStyle.Render(model.PathSymbol(path)) + " "
}

// renderTerminal draws the scrollback, pending submissions, the live prompt
// and completion hints.
func (m AppModel) renderTerminal() string {
	width := m.WindowSize.Width
	var lines []string

	for _, e := range m.Terminal.Entries() {
		input := e.Input
		if e.Interrupted {
			input += model.IconInterrupt
		}
		lines = append(lines, renderPrompt(e.Path, e.PromptError)+input)
		lines = append(lines, terminal.Layout(e.Result.Output, width, styleCell)...)
	}

	pending := m.Terminal.Pending()
	for i, sub := range pending {
		if i == 0 {
			lines = append(lines, renderPrompt(sub.Path, sub.PromptError)+sub.Input)
			continue
		}
		lines = append(lines, dimStyle.Render(sub.Input))
	}

	live := m.renderInput()
	if len(pending) == 0 {
		live = renderPrompt(m.Terminal.Path(), m.Terminal.PromptError()) + live
	}
	lines = append(lines, live)

	if hints := m.Terminal.Hints(); len(hints) > 0 {
		lines = append(lines, terminal.Layout(model.Output{Flow: hints}, width, styleCell)...)
	}
	return strings.Join(lines, "\n")
}

// renderInput draws the buffer with a block cursor.
func (m AppModel) renderInput() string {
	buf := []rune(m.Terminal.Buffer())
	at := m.Terminal.Cursor()

	under := " "
	if at < len(buf) {
		under = string(buf[at])
	}
	rest := ""
	if at+1 < len(buf) {
		rest = string(buf[at+1:])
	}
	return string(buf[:at]) + cursorStyle.Render(under) + rest
}

func windowSize(w, h int) (int, int) {
	width := w * 80 / 100
	if width < 40 {
		width = 40
	}
	if width > w-4 {
		width = w - 4
	}
	height := h - 6
	if height < 5 {
		height = 5
	}
	return width, height
}

func (m AppModel) renderWindow() string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}
	width, height := windowSize(w, h)

	kind := "TextViewer"
	if m.Window.Kind == model.WindowBrowser {
		kind = "Browser"
	}
	title := titleStyle.Render(kind + " - " + m.Window.Title)

	content := m.WindowView.View()
	if m.WindowLoading {
		content = "Loading..."
	}
	footer := dimStyle.Render("↑/↓: Scroll • PgUp/PgDn: Page • Esc/q: Close")

	dialog := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(title + "\n" + content + "\n" + footer)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}
