package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Warnf prints a styled warning line.
func Warnf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, warnStyle.Render("Warning:")+" "+fmt.Sprintf(format, args...))
}

// Successf prints a styled success line.
func Successf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}
