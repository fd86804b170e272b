package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	userLabel   = "User:"
	closingText = "Konec."
)

var (
	colorUser  = lipgloss.Color("12") // bright blue
	colorModel = lipgloss.Color("10") // bright green
)

// palette renders console labels for one output. Colors are dropped when
// the output is not a color-capable terminal.
type palette struct {
	prompt  lipgloss.Style
	label   lipgloss.Style
	closing lipgloss.Style
}

func newPalette(out io.Writer) palette {
	r := lipgloss.NewRenderer(out)
	return palette{
		prompt:  r.NewStyle().Foreground(colorUser),
		label:   r.NewStyle().Foreground(colorModel),
		closing: r.NewStyle().Foreground(colorModel),
	}
}

func (p palette) userPrompt() string {
	return p.prompt.Render(userLabel) + " "
}

func (p palette) modelLabel(name string) string {
	return p.label.Render(name+":") + " "
}

func (p palette) closingMessage() string {
	return p.closing.Render(closingText)
}
