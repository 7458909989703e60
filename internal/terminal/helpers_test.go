package terminal

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"termfolio/internal/commands"
	"termfolio/internal/files"
)

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"about.md":       {Data: []byte("# About\n")},
		"notes.txt":      {Data: []byte("hello\n")},
		".profile":       {Data: []byte("export A=1\n")},
		"docs/guide.txt": {Data: []byte("guide\n")},
		"docs/intro.md":  {Data: []byte("# Intro\n")},
	}
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newDispatcher(t *testing.T, opts commands.Options) *commands.Dispatcher {
	t.Helper()
	opts.Files = files.NewLocalFS(testTree())
	d, err := commands.New(opts)
	require.NoError(t, err)
	return d
}

func newTerminal(t *testing.T) *Terminal {
	t.Helper()
	return New(newDispatcher(t, commands.Options{}), Options{Now: func() time.Time { return fixedNow }})
}

// typeLine sends every rune of s as a key event.
func typeLine(term *Terminal, s string) {
	for _, r := range s {
		term.HandleKey(Runes(string(r)))
	}
}

// enter submits the buffer and runs it to completion.
func enter(t *testing.T, term *Terminal) {
	t.Helper()
	sub := term.HandleKey(Key{Type: KeyEnter})
	require.NotNil(t, sub)
	term.Run(t.Context(), sub)
}

func runLine(t *testing.T, term *Terminal, line string) {
	t.Helper()
	typeLine(term, line)
	enter(t, term)
}
