package views

import (
	"fmt"

	"github.com/ksuda/taminal/internal/ui/models"
)

// RenderStatus renders the status bar: current directory on the left, key
// hints on the right.
func RenderStatus(s models.State) string {
	left := StatusDirStyle.Render(s.CurrentDir)
	right := StatusStyle.Render(fmt.Sprintf("%d lines  ↑/↓ history  ctrl+l clear  ctrl+c quit", s.LineCount))
	return fmt.Sprintf("%s  %s", left, right)
}
