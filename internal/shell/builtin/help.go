package builtin

// helpCLI is the terminal front end's usage summary.
func helpCLI() []Line {
	return plainLines(
		"=== Simple Terminal - Available Commands ===",
		"",
		"File and Directory Operations:",
		"  ls [dir]      - List directory contents",
		"  cd [dir]      - Change directory",
		"  pwd           - Print working directory",
		"  mkdir <dir>   - Create directory",
		"  rmdir <dir>   - Remove empty directory",
		"  rm <file>     - Remove file",
		"    -f          - Force removal (ignore errors)",
		"    -r, -R      - Remove directories and their contents recursively",
		"",
		"Terminal Control:",
		"  clear         - Clear screen",
		"  help          - Show this help message",
		"  exit/quit     - Exit the terminal",
		"",
		"Other Commands:",
		"  [command]     - Execute as external command",
		"",
		"Shortcuts:",
		"  Ctrl+C        - Interrupt running command",
		"  Ctrl+D        - Exit on empty line",
	)
}

// helpWidget is the windowed front end's usage summary.
func helpWidget() []Line {
	return plainLines(
		"=== Available Commands ===",
		"",
		"File and Directory Operations:",
		"  ls [dir]      - List directory contents",
		"  cd [dir]      - Change directory",
		"  pwd           - Print working directory",
		"  mkdir <dir>   - Create directory",
		"  rmdir <dir>   - Remove empty directory",
		"  rm <file>     - Remove file",
		"    -f          - Force removal",
		"    -r          - Remove directories recursively",
		"",
		"Terminal Control:",
		"  clear         - Clear terminal",
		"  help          - Show this help",
		"  exit/quit     - (Use window close button)",
		"",
		"Shortcuts:",
		"  Up/Down       - Navigate command history",
		"  Ctrl+L        - Clear terminal",
		"  Enter         - Execute command",
	)
}

func plainLines(texts ...string) []Line {
	lines := make([]Line, 0, len(texts))
	for _, t := range texts {
		lines = append(lines, Line{Text: t})
	}
	return lines
}
