package terminal

import (
	"slices"
	"strings"
)

// History is the recall log of submitted lines with a prefix filtered
// view for up/down navigation.
type History struct {
	entries []string
	limit   int

	typed    string
	filtered []string
	index    int
}

// NewHistory creates an empty history. A limit of 0 keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends a submitted line, dropping the oldest over the limit.
// The filtered view is left alone until the next Filter.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = slices.Delete(h.entries, 0, len(h.entries)-h.limit)
	}
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	return slices.Clone(h.entries)
}

// Filter restarts navigation for the text typed so far: the view becomes
// the entries starting with typed and the index points one past the newest.
func (h *History) Filter(typed string) {
	h.typed = typed
	h.filtered = h.filtered[:0]
	for _, e := range h.entries {
		if strings.HasPrefix(e, typed) {
			h.filtered = append(h.filtered, e)
		}
	}
	h.index = len(h.filtered)
}

// Navigating reports whether an entry of the view is currently recalled.
func (h *History) Navigating() bool {
	return h.index < len(h.filtered)
}

// Up moves to the next older entry. It reports false at the oldest one.
func (h *History) Up() (string, bool) {
	if h.index == 0 {
		return "", false
	}
	h.index--
	return h.filtered[h.index], true
}

// Down moves to the next newer entry. Past the newest it returns the text
// typed before navigation began. It reports false when already there.
func (h *History) Down() (string, bool) {
	if h.index >= len(h.filtered) {
		return "", false
	}
	h.index++
	if h.index == len(h.filtered) {
		return h.typed, true
	}
	return h.filtered[h.index], true
}
