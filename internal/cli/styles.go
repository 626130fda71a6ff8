// Package cli provides terminal styling and startup messages for pitchmon.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#5FD7A7") // in-tune green
	flatColor    = lipgloss.Color("#5FAFFF") // flat blue
	sharpColor   = lipgloss.Color("#FF875F") // sharp orange
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
	errorColor   = lipgloss.Color("#D75F5F")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// CentsStyle colors a note name by how close it is to its nearest pitch
// class. cents is signed: negative is flat, positive is sharp.
func CentsStyle(cents float32) lipgloss.Style {
	switch {
	case cents < -5:
		return lipgloss.NewStyle().Bold(true).Foreground(flatColor)
	case cents > 5:
		return lipgloss.NewStyle().Bold(true).Foreground(sharpColor)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	}
}

// PrintVersion prints version information.
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("pitchmon"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}
