// Package ui implements the windowed front end using Bubble Tea: a text
// output pane, a single-line input field, and a status bar.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UI wraps the Bubble Tea program.
type UI struct {
	program *tea.Program
}

// NewUI creates the UI around a model.
func NewUI(model Model) *UI {
	return &UI{
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Start runs the UI program, blocking until it exits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
