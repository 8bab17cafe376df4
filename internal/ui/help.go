package ui

import (
	"strings"

	"github.com/ksuda/taminal/internal/shell/builtin"
	"github.com/ksuda/taminal/internal/ui/service"
)

// helpMarkdown is the windowed front end's help, rendered through the
// markdown renderer so headings and emphasis pick up terminal styling.
const helpMarkdown = `# Available Commands

## File and Directory Operations

- ` + "`ls [dir]`" + ` - List directory contents
- ` + "`cd [dir]`" + ` - Change directory
- ` + "`pwd`" + ` - Print working directory
- ` + "`mkdir <dir>`" + ` - Create directory
- ` + "`rmdir <dir>`" + ` - Remove empty directory
- ` + "`rm <file>`" + ` - Remove file (` + "`-f`" + ` force, ` + "`-r`" + ` recursive)

## Terminal Control

- ` + "`clear`" + ` - Clear terminal
- ` + "`help`" + ` - Show this help
- ` + "`exit`/`quit`" + ` - Use the window close button

## Shortcuts

- Up/Down - Navigate command history
- Ctrl+L - Clear terminal
- Enter - Execute command
`

// RenderHelp renders the widget help text into display lines. Falls back to
// the plain built-in help when the renderer fails.
func RenderHelp(renderer service.MarkdownRenderer) []builtin.Line {
	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return builtin.WidgetOptions().Help
	}

	var lines []builtin.Line
	for _, l := range strings.Split(strings.Trim(rendered, "\n"), "\n") {
		lines = append(lines, builtin.Line{Text: l})
	}
	return lines
}
