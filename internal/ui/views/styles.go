package views

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// OutputStyle frames the terminal output pane.
	OutputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// PromptStyle colors the prompt prefix before the input field.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	// InputStyle frames the input bar.
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	// StatusStyle renders the status bar.
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// StatusDirStyle highlights the current directory in the status bar.
	StatusDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)
