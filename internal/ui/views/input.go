package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ksuda/taminal/internal/ui/models"
)

// RenderInput renders the input bar: prompt prefix plus the text field.
func RenderInput(s models.State) string {
	return InputStyle.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		PromptStyle.Render(s.Prompt),
		s.Input.View(),
	))
}
