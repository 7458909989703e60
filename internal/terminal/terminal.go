// Package terminal is the interactive core of the shell: the line editor,
// history recall, tab completion and the scrollback, tied to a command
// dispatcher. A Terminal is owned by a single event loop goroutine; only
// Execute may be called from elsewhere.
package terminal

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"termfolio/internal/commands"
	"termfolio/internal/model"
)

// Submission is an input line handed to the dispatcher.
type Submission struct {
	ID    string
	Input string

	// Filled in when the submission starts executing.
	Path        []string
	PromptError bool

	skipHistory bool
}

// Options configures a Terminal.
type Options struct {
	HistoryLimit int
	Now          func() time.Time
}

// Terminal drives one interactive session.
type Terminal struct {
	dispatcher *commands.Dispatcher
	completer  *Completer
	history    *History
	scrollback Scrollback
	editor     Editor
	now        func() time.Time

	hints     []model.Cell
	lastError bool

	running *Submission
	queue   []*Submission
}

// New creates a terminal around a dispatcher.
func New(d *commands.Dispatcher, opts Options) *Terminal {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Terminal{
		dispatcher: d,
		completer:  NewCompleter(d.Registry(), d.Aliases(), d.Session()),
		history:    NewHistory(opts.HistoryLimit),
		now:        now,
	}
}

// Init loads the listing of the working directory used by completion.
// It performs I/O and may run off the event loop.
func (t *Terminal) Init(ctx context.Context) error {
	_, err := t.dispatcher.Session().Refresh(ctx)
	return err
}

// HandleKey applies a key event. It returns a submission the caller must
// Execute when the key started one; nil otherwise. Lines submitted while a
// command is running are queued and returned later by Complete.
func (t *Terminal) HandleKey(k Key) *Submission {
	if k.Type != KeyTab {
		t.hints = nil
	}

	switch k.Type {
	case KeyRune:
		t.edited(t.editor.Insert(k.Text))
	case KeyBackspace:
		t.edited(t.editor.Backspace())
	case KeyDelete:
		t.edited(t.editor.Delete())
	case KeyLeft:
		t.editor.Left()
	case KeyRight:
		t.editor.Right()
	case KeyHome:
		t.editor.Home()
	case KeyEnd:
		t.editor.End()
	case KeyUp:
		if line, ok := t.history.Up(); ok {
			t.editor.Set(line)
		}
	case KeyDown:
		if line, ok := t.history.Down(); ok {
			t.editor.Set(line)
		}
	case KeyTab:
		t.complete()
	case KeyEnter:
		input := t.editor.Text()
		t.editor.Reset()
		t.history.Filter("")
		return t.Submit(input)
	case KeyInterrupt:
		t.interrupt()
	case KeyClear:
		return t.enqueue(&Submission{Input: "clear", skipHistory: true})
	}
	return nil
}

// Submit queues an input line as if it had been typed and entered.
func (t *Terminal) Submit(input string) *Submission {
	return t.enqueue(&Submission{Input: input})
}

func (t *Terminal) enqueue(sub *Submission) *Submission {
	sub.ID = uuid.NewString()
	if t.running != nil {
		t.queue = append(t.queue, sub)
		slog.Debug("Queued submission", "id", sub.ID, "queued", len(t.queue))
		return nil
	}
	t.start(sub)
	return sub
}

func (t *Terminal) start(sub *Submission) {
	sub.Path = t.dispatcher.Session().Path()
	sub.PromptError = t.lastError
	t.running = sub
}

// Execute runs a submission through the dispatcher. It blocks on I/O and is
// meant to run off the event loop; the result goes back through Complete.
func (t *Terminal) Execute(ctx context.Context, sub *Submission) model.CommandResult {
	return t.dispatcher.Dispatch(ctx, sub.Input)
}

// Complete records the result of the running submission and returns the
// next queued one, already started, or nil.
func (t *Terminal) Complete(sub *Submission, res model.CommandResult) *Submission {
	if t.running == nil || t.running.ID != sub.ID {
		slog.Warn("Completion for a submission that is not running", "id", sub.ID)
		return nil
	}

	if res.ClearScreen {
		t.scrollback.HideAll()
	}
	t.scrollback.Append(model.ExecutedEntry{
		ID:          sub.ID,
		Input:       sub.Input,
		Result:      res,
		Path:        sub.Path,
		PromptError: sub.PromptError,
		Timestamp:   t.now(),
	})
	if !res.SkipHistory && !sub.skipHistory {
		t.history.Add(sub.Input)
		if !t.history.Navigating() {
			t.history.Filter(t.editor.Text())
		}
	}
	t.lastError = res.Error
	t.running = nil

	if len(t.queue) == 0 {
		return nil
	}
	next := t.queue[0]
	t.queue = t.queue[1:]
	t.start(next)
	return next
}

// Run executes a submission and everything queued behind it synchronously.
// It is the non-interactive path used by --exec and tests.
func (t *Terminal) Run(ctx context.Context, sub *Submission) {
	for sub != nil {
		sub = t.Complete(sub, t.Execute(ctx, sub))
	}
}

func (t *Terminal) edited(changed bool) {
	if changed {
		t.history.Filter(t.editor.Text())
	}
}

func (t *Terminal) complete() {
	c := t.completer.Complete(t.editor.BeforeCursor())
	if c.Changed {
		t.editor.Set(c.Line)
		t.history.Filter(c.Line)
		t.hints = nil
		return
	}
	t.hints = c.Hints
}

func (t *Terminal) interrupt() {
	input := t.editor.Text()
	t.editor.Reset()
	t.history.Filter("")
	// No echo while a command is running; its entry is not recorded yet.
	if t.running != nil {
		return
	}
	t.scrollback.Append(model.ExecutedEntry{
		ID:          uuid.NewString(),
		Input:       input,
		Path:        t.dispatcher.Session().Path(),
		PromptError: t.lastError,
		Interrupted: true,
		Timestamp:   t.now(),
	})
	t.lastError = false
}

// Busy reports whether a command is executing.
func (t *Terminal) Busy() bool { return t.running != nil }

// Pending returns the running submission followed by the queued ones.
func (t *Terminal) Pending() []Submission {
	var out []Submission
	if t.running != nil {
		out = append(out, *t.running)
	}
	for _, s := range t.queue {
		out = append(out, *s)
	}
	return out
}

// Buffer returns the input line.
func (t *Terminal) Buffer() string { return t.editor.Text() }

// Cursor returns the cursor as a rune index into Buffer.
func (t *Terminal) Cursor() int { return t.editor.Cursor() }

// CursorOffset returns the number of runes right of the cursor.
func (t *Terminal) CursorOffset() int { return t.editor.Offset() }

// Hints returns the candidates of the last ambiguous tab completion.
func (t *Terminal) Hints() []model.Cell { return slices.Clone(t.hints) }

// PromptError reports whether the last command failed.
func (t *Terminal) PromptError() bool { return t.lastError }

// Path returns the working path.
func (t *Terminal) Path() []string { return t.dispatcher.Session().Path() }

// Entries returns the visible scrollback entries.
func (t *Terminal) Entries() []model.ExecutedEntry { return t.scrollback.Visible() }

// Scrollback returns the underlying log, hidden entries included.
func (t *Terminal) Scrollback() []model.ExecutedEntry { return t.scrollback.Entries() }

// History returns the recall log.
func (t *Terminal) History() []string { return t.history.Entries() }
