package terminal

// KeyType is the class of a key event the line editor reacts to.
type KeyType int

const (
	KeyUnknown KeyType = iota
	KeyRune
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyUp
	KeyDown
	KeyInterrupt
	KeyClear
)

// Key is a single key event. Text holds the typed characters for KeyRune.
type Key struct {
	Type KeyType
	Text string
}

// Key names as produced by bubbletea's KeyMsg.String(); the websocket
// protocol uses the same names.
var keyNames = map[string]KeyType{
	"backspace": KeyBackspace,
	"ctrl+h":    KeyBackspace,
	"delete":    KeyDelete,
	"ctrl+d":    KeyDelete,
	"left":      KeyLeft,
	"ctrl+b":    KeyLeft,
	"right":     KeyRight,
	"ctrl+f":    KeyRight,
	"home":      KeyHome,
	"ctrl+a":    KeyHome,
	"end":       KeyEnd,
	"ctrl+e":    KeyEnd,
	"enter":     KeyEnter,
	"ctrl+m":    KeyEnter,
	"tab":       KeyTab,
	"up":        KeyUp,
	"ctrl+p":    KeyUp,
	"down":      KeyDown,
	"ctrl+n":    KeyDown,
	"ctrl+c":    KeyInterrupt,
	"ctrl+l":    KeyClear,
}

// KeyFromName builds a key event from its name. Names that are not editor
// keys become KeyRune when text is not empty ("a", "space", pasted text)
// and KeyUnknown otherwise.
func KeyFromName(name, text string) Key {
	if t, ok := keyNames[name]; ok {
		return Key{Type: t}
	}
	if name == "space" || name == " " {
		return Key{Type: KeyRune, Text: " "}
	}
	if text != "" {
		return Key{Type: KeyRune, Text: text}
	}
	return Key{Type: KeyUnknown}
}

// Runes is a shorthand for a KeyRune event.
func Runes(s string) Key {
	return Key{Type: KeyRune, Text: s}
}
