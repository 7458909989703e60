package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAliases(t *testing.T) *Aliases {
	t.Helper()
	a, err := NewAliases(map[string]string{
		"..":      "cd ..",
		"l":       "ls -lah",
		"ll":      "ls -lh",
		"open":    "xdg-open",
		"apt-get": "apt",
		"o":       "open",
	})
	require.NoError(t, err)
	return a
}

func TestAliases_Resolve(t *testing.T) {
	a := testAliases(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"..", "cd .."},
		{"l", "ls -lah"},
		{"ll docs", "ls -lh docs"},
		{`open "my file.md"`, `xdg-open "my file.md"`},
		{"o readme.md", "xdg-open readme.md"},
		{"  l", "ls -lah"},
		{"ls -l", "ls -l"},
		{"echo l", "echo l"},
		{"", ""},
		{"   ", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := a.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAliases_ResolveIsIdempotent(t *testing.T) {
	a := testAliases(t)

	for _, input := range []string{"l", "o x", "..", "help", "apt-get install vim"} {
		once, err := a.Resolve(input)
		require.NoError(t, err)
		twice, err := a.Resolve(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, input)
	}
}

func TestAliases_ResolveParseError(t *testing.T) {
	a := testAliases(t)
	_, err := a.Resolve(`echo "unterminated`)
	assert.ErrorIs(t, err, ErrUnclosedQuote)
}

func TestNewAliases_RejectsCycles(t *testing.T) {
	tests := []struct {
		name  string
		table map[string]string
	}{
		{"self reference", map[string]string{"ls": "ls -l"}},
		{"two step cycle", map[string]string{"a": "b x", "b": "a y"}},
		{"three step cycle", map[string]string{"a": "b", "b": "c", "c": "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAliases(tt.table)
			assert.ErrorIs(t, err, ErrAliasCycle)
		})
	}
}

func TestNewAliases_RejectsInvalid(t *testing.T) {
	_, err := NewAliases(map[string]string{"x": ""})
	assert.ErrorIs(t, err, ErrInvalidAlias)

	_, err = NewAliases(map[string]string{"x": `echo "open`})
	assert.ErrorIs(t, err, ErrUnclosedQuote)
}

func TestAliases_Names(t *testing.T) {
	a := testAliases(t)
	assert.Equal(t, []string{"..", "apt-get", "l", "ll", "o", "open"}, a.Names())
	assert.Equal(t, 6, a.Len())

	r, ok := a.Lookup("ll")
	assert.True(t, ok)
	assert.Equal(t, "ls -lh", r)
}

func TestNewAliases_Empty(t *testing.T) {
	a, err := NewAliases(nil)
	require.NoError(t, err)

	got, err := a.Resolve("ls")
	require.NoError(t, err)
	assert.Equal(t, "ls", got)
}
