package model

import (
	"strings"
	"time"
)

// CellKind tells a renderer how to present a piece of structured output.
type CellKind int

const (
	CellText CellKind = iota
	CellFile
	CellDirectory
)

// Cell is one styled fragment of structured output.
type Cell struct {
	Text string   `json:"text"`
	Kind CellKind `json:"kind"`
}

// CellForNode builds the cell used to display a directory entry.
func CellForNode(n Node) Cell {
	if n.IsDir() {
		return Cell{Text: n.Name, Kind: CellDirectory}
	}
	return Cell{Text: n.Name, Kind: CellFile}
}

// Output is the UI-neutral body of a command result.
// Any combination of the three parts may be set; they render in field order.
type Output struct {
	Text string   `json:"text,omitempty"` // Plain text, may span several lines
	Rows [][]Cell `json:"rows,omitempty"` // Table rows, one per line
	Flow []Cell   `json:"flow,omitempty"` // Items laid out left to right and wrapped
}

// Text wraps a plain string as an Output.
func Text(s string) Output {
	return Output{Text: s}
}

// IsEmpty reports whether there is nothing to render.
func (o Output) IsEmpty() bool {
	return o.Text == "" && len(o.Rows) == 0 && len(o.Flow) == 0
}

// String renders the output without styling or width constraints.
func (o Output) String() string {
	var parts []string
	if o.Text != "" {
		parts = append(parts, o.Text)
	}
	for _, row := range o.Rows {
		parts = append(parts, joinCells(row, " "))
	}
	if len(o.Flow) > 0 {
		parts = append(parts, joinCells(o.Flow, " "))
	}
	return strings.Join(parts, "\n")
}

func joinCells(cells []Cell, sep string) string {
	texts := make([]string, len(cells))
	for i, c := range cells {
		texts[i] = c.Text
	}
	return strings.Join(texts, sep)
}

// CommandResult is what every command handler produces.
type CommandResult struct {
	Output      Output `json:"output"`
	Error       bool   `json:"error,omitempty"`       // Failure; the next prompt arrow turns red
	Invisible   bool   `json:"invisible,omitempty"`   // The execution itself is not shown in the scrollback
	SkipHistory bool   `json:"skipHistory,omitempty"` // The raw input is not added to recall history
	ClearScreen bool   `json:"clearScreen,omitempty"` // Hide every earlier scrollback entry
}

// Failure builds an error result with a plain text message.
func Failure(msg string) CommandResult {
	return CommandResult{Output: Text(msg), Error: true}
}

// Success builds a result with a plain text message.
func Success(msg string) CommandResult {
	return CommandResult{Output: Text(msg)}
}

// ExecutedEntry is one record of the scrollback log.
type ExecutedEntry struct {
	ID          string        `json:"id"`
	Input       string        `json:"input"`
	Result      CommandResult `json:"result"`
	Path        []string      `json:"path"`        // Working path when the command started
	PromptError bool          `json:"promptError"` // Whether the prompt in front of the input was red
	Interrupted bool          `json:"interrupted"` // Line was discarded with Ctrl+C, never executed
	Timestamp   time.Time     `json:"timestamp"`
	Hidden      bool          `json:"hidden"` // Soft-deleted by clear
}

// Visible reports whether the entry belongs in the rendered scrollback.
func (e ExecutedEntry) Visible() bool {
	return !e.Hidden && !e.Result.Invisible
}
