package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []string
		expectedErr error
	}{
		{
			name:     "simple command",
			input:    "echo hello",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "command with flags and path",
			input:    "ls -la docs/projects",
			expected: []string{"ls", "-la", "docs/projects"},
		},
		{
			name:     "single quoted string",
			input:    "echo 'hello world'",
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "double quoted string",
			input:    `echo "hello world"`,
			expected: []string{"echo", "hello world"},
		},
		{
			name:     "adjacent quotes join into one token",
			input:    `echo "hel"'lo'`,
			expected: []string{"echo", "hello"},
		},
		{
			name:     "escaped space outside quotes",
			input:    `cat my\ notes.txt`,
			expected: []string{"cat", "my notes.txt"},
		},
		{
			name:     "escaped quote in double quotes",
			input:    `echo "say \"hi\""`,
			expected: []string{"echo", `say "hi"`},
		},
		{
			name:     "escaped backslash in double quotes",
			input:    `echo "a\\b"`,
			expected: []string{"echo", `a\b`},
		},
		{
			name:     "other escapes in double quotes keep the backslash",
			input:    `echo "a\nb"`,
			expected: []string{"echo", `a\nb`},
		},
		{
			name:     "single quotes preserve backslashes",
			input:    `echo 'a\"b'`,
			expected: []string{"echo", `a\"b`},
		},
		{
			name:     "empty quotes produce an empty token",
			input:    `echo "" ''`,
			expected: []string{"echo", "", ""},
		},
		{
			name:     "extra whitespace is ignored",
			input:    "  cd \t docs  ",
			expected: []string{"cd", "docs"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only whitespace",
			input:    "   \t  ",
			expected: []string{},
		},
		{
			name:        "unclosed double quote",
			input:       `echo "hello`,
			expectedErr: ErrUnclosedQuote,
		},
		{
			name:        "unclosed single quote",
			input:       `echo 'hello`,
			expectedErr: ErrUnclosedQuote,
		},
		{
			name:        "trailing backslash",
			input:       `echo hello\`,
			expectedErr: ErrTrailingEscape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenize_Offsets(t *testing.T) {
	line := `  ll  "my dir" x`
	tokens, err := Tokenize(line)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Token{Value: "ll", Start: 2, End: 4}, tokens[0])
	assert.Equal(t, Token{Value: "my dir", Start: 6, End: 14}, tokens[1])
	assert.Equal(t, `"my dir"`, line[tokens[1].Start:tokens[1].End])
	assert.Equal(t, Token{Value: "x", Start: 15, End: 16}, tokens[2])
}

func TestJoin_RoundTrip(t *testing.T) {
	inputs := []string{
		`echo "hello world" plain`,
		`cat 'it'\''s here' "a \"b\"" c\ d`,
		`echo '' "" x`,
		`xdg-open "dir with spaces/readme.md"`,
		`echo back\\slash "tab	inside"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Split(input)
			require.NoError(t, err)

			second, err := Split(Join(first))
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "plain", Quote("plain"))
	assert.Equal(t, "''", Quote(""))
	assert.Equal(t, "'a b'", Quote("a b"))
	assert.Equal(t, `'it'\''s'`, Quote("it's"))
}
