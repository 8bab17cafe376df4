// Package service provides rendering services for the windowed front end.
package service

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown source into styled terminal text.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer implements MarkdownRenderer using glamour.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer with automatic light/dark styling.
func NewGlamourRenderer(wordWrap int) (*GlamourRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

func (g *GlamourRenderer) Render(markdown string) (string, error) {
	return g.renderer.Render(markdown)
}
