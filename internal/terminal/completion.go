package terminal

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"termfolio/internal/cmdline"
	"termfolio/internal/commands"
	"termfolio/internal/model"
)

// Completion is the outcome of a tab press. When Changed is set, Line
// replaces the input and the cursor goes to its end; otherwise Hints holds
// the ambiguous candidates (and is empty when nothing matched).
type Completion struct {
	Line    string
	Changed bool
	Hints   []model.Cell
}

// Completer computes tab completions from the command registry, the alias
// table and the cached listing of the working directory.
type Completer struct {
	registry *commands.Registry
	aliases  *cmdline.Aliases
	session  *commands.Session
}

// NewCompleter creates a completer.
func NewCompleter(registry *commands.Registry, aliases *cmdline.Aliases, session *commands.Session) *Completer {
	return &Completer{registry: registry, aliases: aliases, session: session}
}

// Complete completes the last word of input, which is the text left of the
// cursor.
func (c *Completer) Complete(input string) Completion {
	partial := strings.TrimLeft(input, " ")
	if partial == "" {
		return Completion{}
	}
	words := strings.Split(partial, " ")
	last := strings.ToLower(words[len(words)-1])

	var candidates []model.Cell
	if len(words) == 1 {
		candidates = c.commandCandidates(last, true)
	} else {
		kind := commands.OperandFile
		if cmd, ok := c.registry.Lookup(words[0]); ok {
			if op, ok := cmd.OperandAt(len(words) - 2); ok {
				kind = op.Kind
			}
		}
		switch kind {
		case commands.OperandDirectory:
			candidates = c.nodeCandidates(last, true)
		case commands.OperandProgram:
			candidates = c.commandCandidates(last, false)
		default:
			candidates = c.nodeCandidates(last, false)
		}
	}

	if len(candidates) == 0 {
		return Completion{}
	}

	var line string
	if len(words) > 1 {
		line = strings.Join(words[:len(words)-1], " ") + " "
	}

	if len(candidates) == 1 {
		line += candidates[0].Text + " "
	} else {
		sortCandidates(candidates)
		line += commonPrefix(candidates[0].Text, candidates[len(candidates)-1].Text)
	}

	if utf8.RuneCountInString(line) > utf8.RuneCountInString(partial) {
		return Completion{Line: line, Changed: true}
	}
	return Completion{Hints: candidates}
}

func (c *Completer) commandCandidates(prefix string, withAliases bool) []model.Cell {
	names := c.registry.Names()
	if withAliases {
		names = append(names, c.aliases.Names()...)
	}

	var out []model.Cell
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, model.Cell{Text: name})
		}
	}
	return out
}

func (c *Completer) nodeCandidates(prefix string, dirsOnly bool) []model.Cell {
	var out []model.Cell
	for _, n := range c.session.Listing() {
		if dirsOnly && !n.IsDir() {
			continue
		}
		// Hidden entries only when asked for with a leading dot.
		if prefix == "" && n.IsHidden() {
			continue
		}
		if strings.HasPrefix(strings.ToLower(n.Name), prefix) {
			out = append(out, model.CellForNode(n))
		}
	}
	return out
}

func sortCandidates(cells []model.Cell) {
	col := collate.New(language.Und)
	slices.SortStableFunc(cells, func(a, b model.Cell) int {
		return col.CompareString(a.Text, b.Text)
	})
}

// commonPrefix returns the longest shared prefix of a and b, rune-wise.
func commonPrefix(a, b string) string {
	ar, br := []rune(a), []rune(b)
	n := 0
	for n < len(ar) && n < len(br) && ar[n] == br[n] {
		n++
	}
	return string(ar[:n])
}
