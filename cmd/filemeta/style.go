package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/damacus/iron-files/internal/filemeta"
)

// iconColors mirrors the CSS classes used by the web views.
var iconColors = map[string]lipgloss.Color{
	"doc-color":     lipgloss.Color("#2563eb"),
	"image-color":   lipgloss.Color("#16a34a"),
	"archive-color": lipgloss.Color("#d97706"),
	"default-color": lipgloss.Color("#6b7280"),
}

const categoryWidth = 10

type styles struct {
	plain    bool
	renderer *lipgloss.Renderer
}

func newStyles(w io.Writer, noColor bool) *styles {
	return &styles{plain: noColor, renderer: lipgloss.NewRenderer(w)}
}

// category renders a fixed-width category label in its icon colour.
func (s *styles) category(c filemeta.Category) string {
	style := s.renderer.NewStyle().Width(categoryWidth)
	if !s.plain {
		style = style.Bold(true).Foreground(iconColors[filemeta.IconStyleFor(c)])
	}
	return style.Render(string(c))
}
