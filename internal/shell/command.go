package shell

import "strings"

// Command is a parsed input line: the command name plus its arguments.
// Tokenization is whitespace-delimited with no quoting support.
type Command struct {
	Name string
	Args []string
}

// Tokenize splits a raw input line into a Command.
// Returns false for lines that contain no tokens.
//
// A tab at the end of the line is preserved on the final argument. It is the
// simulated completion trigger, and whitespace splitting would otherwise eat
// it before the dispatcher could see it.
func Tokenize(line string) (Command, bool) {
	trailingTab := strings.HasSuffix(line, "\t")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	args := fields[1:]
	if trailingTab && len(args) > 0 {
		args[len(args)-1] += "\t"
	}
	return Command{Name: fields[0], Args: args}, true
}
