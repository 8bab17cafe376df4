package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ksuda/taminal/internal/ui/models"
)

// RenderRoot renders the complete UI layout.
func RenderRoot(s models.State) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderOutput(s),
		RenderInput(s),
		RenderStatus(s),
	)
}
