// Package models holds the view state shared between the UI model and its
// views.
package models

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// State is the complete view state of the windowed front end.
type State struct {
	Input    textinput.Model
	Viewport viewport.Model

	Width  int
	Height int

	// Prompt is the rendered prompt prefix shown before the input field.
	Prompt string
	// CurrentDir is shown in the status bar.
	CurrentDir string
	// LineCount is the number of buffered output lines.
	LineCount int
}
