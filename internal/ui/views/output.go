package views

import (
	"github.com/ksuda/taminal/internal/ui/models"
)

// RenderOutput renders the scrolling output pane.
func RenderOutput(s models.State) string {
	return OutputStyle.Render(s.Viewport.View())
}
