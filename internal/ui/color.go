// Package ui renders the command's terminal output.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the palette used for CLI output, bound to one renderer.
type Styles struct {
	Green lipgloss.Style
	Cyan  lipgloss.Style
	Red   lipgloss.Style
	Bold  lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles binds the palette to w. With color false every style renders
// plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Green: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Cyan:  r.NewStyle().Foreground(lipgloss.Color("14")),
		Red:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Bold:  r.NewStyle().Bold(true),
		Dim:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
