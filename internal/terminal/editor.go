package terminal

import "unicode"

// Editor is the in-progress input line. The cursor is kept as the number
// of runes to its right, so 0 is the end of the line and Len() the start.
type Editor struct {
	buf    []rune
	offset int
}

// Text returns the whole line.
func (e *Editor) Text() string { return string(e.buf) }

// Len returns the line length in runes.
func (e *Editor) Len() int { return len(e.buf) }

// Offset returns the number of runes right of the cursor.
func (e *Editor) Offset() int { return e.offset }

// Cursor returns the cursor position as a rune index from the start.
func (e *Editor) Cursor() int { return len(e.buf) - e.offset }

// BeforeCursor returns the text left of the cursor.
func (e *Editor) BeforeCursor() string { return string(e.buf[:e.Cursor()]) }

// AfterCursor returns the text right of the cursor.
func (e *Editor) AfterCursor() string { return string(e.buf[e.Cursor():]) }

// Insert adds text at the cursor. Control characters are dropped.
// It reports whether the line changed.
func (e *Editor) Insert(s string) bool {
	var ins []rune
	for _, r := range s {
		if !unicode.IsControl(r) {
			ins = append(ins, r)
		}
	}
	if len(ins) == 0 {
		return false
	}

	at := e.Cursor()
	buf := make([]rune, 0, len(e.buf)+len(ins))
	buf = append(buf, e.buf[:at]...)
	buf = append(buf, ins...)
	e.buf = append(buf, e.buf[at:]...)
	return true
}

// Backspace removes the rune left of the cursor.
func (e *Editor) Backspace() bool {
	at := e.Cursor()
	if at == 0 {
		return false
	}
	e.buf = append(e.buf[:at-1], e.buf[at:]...)
	return true
}

// Delete removes the rune right of the cursor.
func (e *Editor) Delete() bool {
	if e.offset == 0 {
		return false
	}
	at := e.Cursor()
	e.buf = append(e.buf[:at], e.buf[at+1:]...)
	e.offset--
	return true
}

func (e *Editor) Left() {
	if e.offset < len(e.buf) {
		e.offset++
	}
}

func (e *Editor) Right() {
	if e.offset > 0 {
		e.offset--
	}
}

func (e *Editor) Home() { e.offset = len(e.buf) }

func (e *Editor) End() { e.offset = 0 }

// Set replaces the line and moves the cursor to the end.
func (e *Editor) Set(s string) {
	e.buf = []rune(s)
	e.offset = 0
}

// Reset empties the line.
func (e *Editor) Reset() { e.Set("") }
