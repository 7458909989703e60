package terminal

import (
	"slices"

	"termfolio/internal/model"
)

// Scrollback is the soft-delete log of executed entries.
type Scrollback struct {
	entries []model.ExecutedEntry
}

// Append records an entry.
func (s *Scrollback) Append(e model.ExecutedEntry) {
	s.entries = append(s.entries, e)
}

// HideAll marks every recorded entry hidden. Nothing is removed.
func (s *Scrollback) HideAll() {
	for i := range s.entries {
		s.entries[i].Hidden = true
	}
}

// Entries returns every recorded entry, hidden ones included.
func (s *Scrollback) Entries() []model.ExecutedEntry {
	return slices.Clone(s.entries)
}

// Visible returns the entries that are rendered.
func (s *Scrollback) Visible() []model.ExecutedEntry {
	var out []model.ExecutedEntry
	for _, e := range s.entries {
		if e.Visible() {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of recorded entries.
func (s *Scrollback) Len() int { return len(s.entries) }
