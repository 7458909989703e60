package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/commands"
	"termfolio/internal/model"
)

func TestTerminal_SubmitAndRecord(t *testing.T) {
	term := newTerminal(t)

	runLine(t, term, "echo hi")

	entries := term.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "echo hi", entries[0].Input)
	assert.Equal(t, "hi", entries[0].Result.Output.String())
	assert.Equal(t, []string{}, entries[0].Path)
	assert.Equal(t, fixedNow, entries[0].Timestamp)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, []string{"echo hi"}, term.History())
	assert.Equal(t, "", term.Buffer())
	assert.Equal(t, 0, term.CursorOffset())
}

func TestTerminal_HistoryRecall(t *testing.T) {
	term := newTerminal(t)
	runLine(t, term, "ls")
	runLine(t, term, "cd docs")
	runLine(t, term, "ls")

	up := Key{Type: KeyUp}
	down := Key{Type: KeyDown}

	term.HandleKey(up)
	assert.Equal(t, "ls", term.Buffer())
	term.HandleKey(up)
	assert.Equal(t, "cd docs", term.Buffer())
	assert.Equal(t, 0, term.CursorOffset())
	term.HandleKey(down)
	assert.Equal(t, "ls", term.Buffer())
	term.HandleKey(down)
	assert.Equal(t, "", term.Buffer())
}

func TestTerminal_HistoryFiltersByTypedPrefix(t *testing.T) {
	term := newTerminal(t)
	runLine(t, term, "cd docs")
	runLine(t, term, "ls")
	runLine(t, term, "cd ..")

	typeLine(term, "cd")
	term.HandleKey(Key{Type: KeyUp})
	assert.Equal(t, "cd ..", term.Buffer())
	term.HandleKey(Key{Type: KeyUp})
	assert.Equal(t, "cd docs", term.Buffer())

	// Editing the recalled line restarts the filter from the new text.
	term.HandleKey(Key{Type: KeyBackspace})
	term.HandleKey(Key{Type: KeyUp})
	assert.Equal(t, "cd docs", term.Buffer())
	term.HandleKey(Key{Type: KeyDown})
	assert.Equal(t, "cd doc", term.Buffer())
}

func TestTerminal_EmptyLine(t *testing.T) {
	term := newTerminal(t)

	enter(t, term)
	entries := term.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Input)
	assert.False(t, entries[0].Result.Error)
	assert.Empty(t, term.History())
}

func TestTerminal_ClearHidesEntries(t *testing.T) {
	term := newTerminal(t)
	runLine(t, term, "echo a")
	runLine(t, term, "echo b")
	runLine(t, term, "clear")

	assert.Empty(t, term.Entries())

	all := term.Scrollback()
	require.Len(t, all, 3)
	assert.True(t, all[0].Hidden)
	assert.True(t, all[1].Hidden)
	assert.False(t, all[2].Hidden)
	assert.True(t, all[2].Result.Invisible)
	assert.Equal(t, []string{"echo a", "echo b", "clear"}, term.History())

	runLine(t, term, "echo c")
	entries := term.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "echo c", entries[0].Input)
}

func TestTerminal_CtrlLClearsAndKeepsBuffer(t *testing.T) {
	term := newTerminal(t)
	runLine(t, term, "echo a")
	typeLine(term, "ec")

	sub := term.HandleKey(Key{Type: KeyClear})
	require.NotNil(t, sub)
	term.Run(t.Context(), sub)

	assert.Empty(t, term.Entries())
	assert.Equal(t, "ec", term.Buffer())
	assert.Equal(t, []string{"echo a"}, term.History())
}

func TestTerminal_Interrupt(t *testing.T) {
	term := newTerminal(t)
	runLine(t, term, "nope")
	require.True(t, term.PromptError())

	typeLine(term, "echo abc")
	assert.Nil(t, term.HandleKey(Key{Type: KeyInterrupt}))

	assert.Equal(t, "", term.Buffer())
	assert.False(t, term.PromptError())
	entries := term.Entries()
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Interrupted)
	assert.True(t, entries[1].PromptError)
	assert.Equal(t, "echo abc", entries[1].Input)
	assert.Equal(t, []string{"nope"}, term.History())
}

func TestTerminal_PromptErrorFollowsLastResult(t *testing.T) {
	term := newTerminal(t)

	runLine(t, term, "cat missing")
	assert.True(t, term.PromptError())

	runLine(t, term, "echo ok")
	assert.False(t, term.PromptError())

	entries := term.Entries()
	require.Len(t, entries, 2)
	assert.False(t, entries[0].PromptError)
	assert.True(t, entries[1].PromptError)
}

func TestTerminal_OneCommandInFlight(t *testing.T) {
	term := newTerminal(t)
	ctx := t.Context()

	typeLine(term, "cd docs")
	first := term.HandleKey(Key{Type: KeyEnter})
	require.NotNil(t, first)
	assert.True(t, term.Busy())

	// Typing continues while the first command runs; the next line queues.
	typeLine(term, "ls")
	assert.Nil(t, term.HandleKey(Key{Type: KeyEnter}))
	require.Len(t, term.Pending(), 2)
	assert.Equal(t, "ls", term.Pending()[1].Input)

	next := term.Complete(first, term.Execute(ctx, first))
	require.NotNil(t, next)
	assert.Equal(t, "ls", next.Input)
	assert.Equal(t, []string{"docs"}, next.Path)

	assert.Nil(t, term.Complete(next, term.Execute(ctx, next)))
	assert.False(t, term.Busy())
	assert.Empty(t, term.Pending())

	entries := term.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, []string{}, entries[0].Path)
	assert.Equal(t, []string{"docs"}, entries[1].Path)
	assert.Equal(t, "guide.txt intro.md", entries[1].Result.Output.String())
}

func TestTerminal_CompleteIgnoresStrangers(t *testing.T) {
	term := newTerminal(t)
	sub := term.Submit("echo a")
	require.NotNil(t, sub)

	assert.Nil(t, term.Complete(&Submission{ID: "other"}, model.CommandResult{}))
	assert.True(t, term.Busy())
	assert.Empty(t, term.Entries())
}

func TestTerminal_TabCompletion(t *testing.T) {
	term := newTerminal(t)
	require.NoError(t, term.Init(t.Context()))

	typeLine(term, "ca")
	term.HandleKey(Key{Type: KeyTab})
	assert.Equal(t, "cat ", term.Buffer())

	typeLine(term, "no")
	term.HandleKey(Key{Type: KeyTab})
	assert.Equal(t, "cat notes.txt ", term.Buffer())
	assert.Equal(t, 0, term.CursorOffset())
}

func TestTerminal_TabUsesTextLeftOfCursor(t *testing.T) {
	term := newTerminal(t)
	typeLine(term, "ecxyz")
	for range 3 {
		term.HandleKey(Key{Type: KeyLeft})
	}

	term.HandleKey(Key{Type: KeyTab})
	assert.Equal(t, "echo ", term.Buffer())
	assert.Equal(t, 0, term.CursorOffset())
}

func TestTerminal_HintsClearedOnNextKey(t *testing.T) {
	term := newTerminal(t)
	typeLine(term, "c")

	term.HandleKey(Key{Type: KeyTab})
	assert.Equal(t, "c", term.Buffer())
	assert.Len(t, term.Hints(), 4)

	term.HandleKey(Runes("d"))
	assert.Empty(t, term.Hints())
}

func TestTerminal_TabOnEmptyLine(t *testing.T) {
	term := newTerminal(t)
	term.HandleKey(Key{Type: KeyTab})
	assert.Equal(t, "", term.Buffer())
	assert.Empty(t, term.Hints())
}

func TestTerminal_HistoryLimit(t *testing.T) {
	d := newDispatcher(t, commands.Options{})
	term := New(d, Options{HistoryLimit: 2})
	runLine(t, term, "echo 1")
	runLine(t, term, "echo 2")
	runLine(t, term, "echo 3")

	assert.Equal(t, []string{"echo 2", "echo 3"}, term.History())
}
