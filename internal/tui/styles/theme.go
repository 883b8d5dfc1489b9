package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/allbin/go-msmouse/internal/tui/colors"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red).
			Padding(0, 1)

	// Info styles
	InfoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Align(lipgloss.Center)

	// Help bar
	HelpStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0).
			Padding(0, 1)
)
