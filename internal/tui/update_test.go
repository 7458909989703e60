package tui

import (
	"context"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/commands"
	"termfolio/internal/files"
	"termfolio/internal/model"
	"termfolio/internal/terminal"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	svc := files.NewLocalFS(fstest.MapFS{
		"about.md":  {Data: []byte("# About\n\nHello there.\n")},
		"notes.txt": {Data: []byte("hello\n")},
	})
	opener := NewChannelOpener()
	d, err := commands.New(commands.Options{Files: svc, Windows: opener})
	require.NoError(t, err)

	m := InitialModel(context.Background(), terminal.New(d, terminal.Options{}), Options{
		Files:   svc,
		Windows: opener,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func press(t *testing.T, m AppModel, msg tea.KeyMsg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// drain runs a command chain until it stops producing results.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		done, ok := msg.(MsgCommandDone)
		if !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		var next tea.Model
		next, cmd = m.Update(done)
		m = next.(AppModel)
	}
	return m
}

func TestUpdate_SubmitsCommands(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "echo hi")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Terminal.Busy())

	m = drain(t, m, cmd)
	entries := m.Terminal.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "hi", entries[0].Result.Output.String())
	assert.Contains(t, m.View(), "echo hi")
}

func TestUpdate_SpaceKey(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "a")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = typeText(t, m, "b")
	assert.Equal(t, "a b", m.Terminal.Buffer())
}

func TestUpdate_QuitOnlyOnEmptyLine(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "ab")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Nil(t, cmd)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "ab", m.Terminal.Buffer())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, "", m.Terminal.Buffer())
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_TextViewerWindow(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(MsgWindow(model.Window{Kind: model.WindowTextViewer, Title: "notes.txt", Content: "hello\n"}))
	m = next.(AppModel)
	require.NotNil(t, m.Window)
	view := m.View()
	assert.Contains(t, view, "TextViewer - notes.txt")
	assert.Contains(t, view, "hello")

	// Keys go to the window, not the prompt.
	m = typeText(t, m, "x")
	assert.Equal(t, "", m.Terminal.Buffer())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Window)
}

func TestUpdate_BrowserWindowLoadsDocument(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(MsgWindow(model.Window{Kind: model.WindowBrowser, Title: "about.md", URL: "about"}))
	m = next.(AppModel)
	require.NotNil(t, cmd)
	assert.True(t, m.WindowLoading)

	doc := loadDocumentCmd(context.Background(), m.opts.Files, "about", []string{"md"}, 60)()
	loaded, ok := doc.(MsgDocument)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Contains(t, loaded.Content, "Hello there.")

	next, _ = m.Update(loaded)
	m = next.(AppModel)
	assert.False(t, m.WindowLoading)
	assert.Contains(t, m.View(), "Hello there.")
}

func TestLoadDocument_Missing(t *testing.T) {
	svc := files.NewLocalFS(fstest.MapFS{})
	msg := loadDocumentCmd(context.Background(), svc, "nope", []string{"md", "markdown"}, 60)().(MsgDocument)
	assert.ErrorIs(t, msg.Err, files.ErrNoSuchPath)
}

func TestLoadDocument_External(t *testing.T) {
	msg := loadDocumentCmd(context.Background(), nil, "https://example.com/repo", nil, 60)().(MsgDocument)
	require.NoError(t, msg.Err)
	assert.Contains(t, msg.Content, "https://example.com/repo")
}

func TestChannelOpener(t *testing.T) {
	o := NewChannelOpener()
	o.OpenWindow(model.Window{Title: "a"})

	msg := waitForWindow(o)()
	assert.Equal(t, MsgWindow(model.Window{Title: "a"}), msg)
}
