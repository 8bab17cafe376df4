package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{name: "simple command", input: "pwd", wantName: "pwd", wantArgs: []string{}, wantOK: true},
		{name: "command with args", input: "rm -f file.txt", wantName: "rm", wantArgs: []string{"-f", "file.txt"}, wantOK: true},
		{name: "extra whitespace collapses", input: "  ls   -l\t foo ", wantName: "ls", wantArgs: []string{"-l", "foo"}, wantOK: true},
		{name: "trailing tab survives on the last argument", input: "cd sr\t", wantName: "cd", wantArgs: []string{"sr\t"}, wantOK: true},
		{name: "trailing tab with no arguments is dropped", input: "cd\t", wantName: "cd", wantArgs: []string{}, wantOK: true},
		{name: "empty line", input: "", wantOK: false},
		{name: "whitespace only", input: "   \t  ", wantOK: false},
		{name: "no quoting support", input: `echo "a b"`, wantName: "echo", wantArgs: []string{`"a`, `b"`}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Tokenize(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantName, cmd.Name)
			assert.ElementsMatch(t, tt.wantArgs, cmd.Args)
		})
	}
}

// Tokenizing by whitespace and re-joining with single spaces is idempotent
// on the token list.
func TestTokenize_RejoinIdempotent(t *testing.T) {
	inputs := []string{
		"rm   -rf  dir",
		"\tls\tfoo bar\t",
		"mkdir a b c",
	}

	for _, input := range inputs {
		first, ok := Tokenize(input)
		require.True(t, ok)

		rejoined := first.Name + " " + strings.Join(first.Args, " ")
		second, ok := Tokenize(rejoined)
		require.True(t, ok)

		assert.Equal(t, first, second)
	}
}
