// Package cmdline turns a raw input line into tokens, flags and operands,
// and expands aliases in front of a command line.
package cmdline

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrUnclosedQuote  = errors.New("unclosed quote")
	ErrTrailingEscape = errors.New("trailing backslash")
)

// Token is a single word of a command line after quote removal.
type Token struct {
	Value string
	Start int // Byte offset of the first character in the raw line, quotes included
	End   int // Byte offset just past the last character
}

type parseState int

const (
	stateOutside parseState = iota
	stateSingleQuote
	stateDoubleQuote
)

// tokenizer accumulates one token at a time while walking the line.
type tokenizer struct {
	tokens  []Token
	builder strings.Builder
	open    bool // A token has started, possibly empty ('' or "")
	start   int
}

func (t *tokenizer) begin(offset int) {
	if !t.open {
		t.open = true
		t.start = offset
	}
}

func (t *tokenizer) flush(end int) {
	if !t.open {
		return
	}
	t.tokens = append(t.tokens, Token{Value: t.builder.String(), Start: t.start, End: end})
	t.builder.Reset()
	t.open = false
}

// Tokenize splits a line into tokens. Whitespace separates tokens outside
// quotes; single quotes preserve everything literally; double quotes allow
// \" and \\ escapes; a backslash outside quotes escapes the next character.
func Tokenize(line string) ([]Token, error) {
	var t tokenizer
	state := stateOutside
	escaping := false

	for i, ch := range line {
		switch state {
		case stateOutside:
			switch {
			case escaping:
				t.builder.WriteRune(ch)
				escaping = false
			case unicode.IsSpace(ch):
				t.flush(i)
			case ch == '\'':
				t.begin(i)
				state = stateSingleQuote
			case ch == '"':
				t.begin(i)
				state = stateDoubleQuote
			case ch == '\\':
				t.begin(i)
				escaping = true
			default:
				t.begin(i)
				t.builder.WriteRune(ch)
			}

		case stateSingleQuote:
			if ch == '\'' {
				state = stateOutside
			} else {
				t.builder.WriteRune(ch)
			}

		case stateDoubleQuote:
			switch {
			case escaping:
				if ch != '\\' && ch != '"' {
					t.builder.WriteRune('\\')
				}
				t.builder.WriteRune(ch)
				escaping = false
			case ch == '"':
				state = stateOutside
			case ch == '\\':
				escaping = true
			default:
				t.builder.WriteRune(ch)
			}
		}
	}

	if state != stateOutside {
		return nil, ErrUnclosedQuote
	}
	if escaping {
		return nil, ErrTrailingEscape
	}
	t.flush(len(line))
	return t.tokens, nil
}

// Split is Tokenize without the offsets.
func Split(line string) ([]string, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values, nil
}

func needsQuoting(r rune) bool {
	return unicode.IsSpace(r) || r == '\'' || r == '"' || r == '\\'
}

// Quote returns s in a form Tokenize reads back as exactly one token.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsFunc(s, needsQuoting) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Join quotes each word and joins them with single spaces.
func Join(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = Quote(w)
	}
	return strings.Join(quoted, " ")
}
