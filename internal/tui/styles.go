// package tui provides the terminal user interface for Impassword.
// This file defines the shared lipgloss styles used across the view.
package tui // import "github.com/toeirei/impassword/internal/tui"

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/impassword/internal/strength"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
	colorWhite     = lipgloss.Color("231")
	colorTrack     = lipgloss.Color("237") // Dark gray
)

// strengthColors colour the label and the filled meter segments per level.
var strengthColors = map[strength.Level]lipgloss.Color{
	strength.VeryWeak:   lipgloss.Color("196"),
	strength.Weak:       lipgloss.Color("208"),
	strength.Medium:     lipgloss.Color("220"),
	strength.Strong:     lipgloss.Color("112"),
	strength.VeryStrong: lipgloss.Color("40"),
}

// Styles defines the reusable lipgloss styles for the view.
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	mainTitleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			MarginTop(1)

	// Password box
	passwordBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorHighlight).
				Padding(0, 2).
				Bold(true)

	placeholderStyle = lipgloss.NewStyle().Foreground(colorSubtle).Italic(true)

	// Options list
	itemStyle         = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	lengthValueStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorHighlight).
				Padding(0, 1)

	// Strength meter
	meterTrackStyle = lipgloss.NewStyle().Foreground(colorTrack)

	statusMessageStyle = lipgloss.NewStyle().Padding(0, 1)
)

// strengthStyle returns the foreground style for level l.
func strengthStyle(l strength.Level) lipgloss.Style {
	c, ok := strengthColors[l]
	if !ok {
		return subtitleStyle
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
