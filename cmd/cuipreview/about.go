package main

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed about.md
var aboutMarkdown string

// renderAbout renders the about overlay at the given width. Falls back
// to the raw markdown if the renderer cannot be built.
func renderAbout(width int) string {
	wrap := width - 8
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return aboutMarkdown
	}
	out, err := renderer.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return out
}
