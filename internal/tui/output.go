package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Output prints the results of commands that do not take over the terminal.
type Output struct {
	w       io.Writer
	styled  bool
	success lipgloss.Style
}

// NewOutput creates an Output writing to w. Styling is applied only when
// styled is true, so pipes and files get plain text.
func NewOutput(w io.Writer, styled bool) *Output {
	return &Output{
		w:       w,
		styled:  styled,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF87")),
	}
}

// Success prints a success message.
func (o *Output) Success(msg string) {
	o.println(o.success, "✓ "+msg)
}

func (o *Output) println(style lipgloss.Style, text string) {
	if o.styled {
		text = style.Render(text)
	}
	_, _ = fmt.Fprintln(o.w, text)
}
