package cmdline

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrAliasCycle   = errors.New("alias cycle")
	ErrInvalidAlias = errors.New("invalid alias")
)

// Aliases is an immutable alias table. An alias replaces the leading word of
// a command line with a longer command line prefix.
type Aliases struct {
	table map[string]string
	names []string
}

// NewAliases validates and freezes an alias table. Tables where an alias
// expands (directly or through other aliases) back to itself are rejected,
// so resolution always terminates.
func NewAliases(table map[string]string) (*Aliases, error) {
	a := &Aliases{table: maps.Clone(table)}
	if a.table == nil {
		a.table = map[string]string{}
	}

	for name, replacement := range a.table {
		if name == "" || replacement == "" {
			return nil, fmt.Errorf("cmdline: alias %q: %w", name, ErrInvalidAlias)
		}
		if _, err := Tokenize(replacement); err != nil {
			return nil, fmt.Errorf("cmdline: alias %q: %w", name, err)
		}
	}

	for name := range a.table {
		seen := map[string]bool{name: true}
		current := name
		for {
			next := leadingWord(a.table[current])
			if _, ok := a.table[next]; !ok {
				break
			}
			if seen[next] {
				return nil, fmt.Errorf("cmdline: alias %q: %w", name, ErrAliasCycle)
			}
			seen[next] = true
			current = next
		}
	}

	a.names = slices.Sorted(maps.Keys(a.table))
	return a, nil
}

func leadingWord(line string) string {
	tokens, err := Tokenize(line)
	if err != nil || len(tokens) == 0 {
		return ""
	}
	return tokens[0].Value
}

// Lookup returns the replacement for an alias name.
func (a *Aliases) Lookup(name string) (string, bool) {
	replacement, ok := a.table[name]
	return replacement, ok
}

// Names returns the alias names in sorted order.
func (a *Aliases) Names() []string {
	return slices.Clone(a.names)
}

// Len returns the number of aliases.
func (a *Aliases) Len() int {
	return len(a.table)
}

// Resolve rewrites the leading word of line while it names an alias. The
// rest of the line is kept verbatim. A line without words is returned as is.
func (a *Aliases) Resolve(line string) (string, error) {
	// Every expansion consumes one alias of an acyclic table, so len+1
	// rounds always reach a fixed point.
	for range len(a.table) + 1 {
		tokens, err := Tokenize(line)
		if err != nil {
			return "", err
		}
		if len(tokens) == 0 {
			return line, nil
		}
		replacement, ok := a.table[tokens[0].Value]
		if !ok {
			return line, nil
		}
		line = replacement + line[tokens[0].End:]
	}
	return "", ErrAliasCycle
}
