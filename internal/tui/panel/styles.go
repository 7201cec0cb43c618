package panel

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	mutedColor = lipgloss.Color("245") // Gray

	// Placeholder shown until the first monitor list arrives
	waitingStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Padding(1, 2)

	// Filter prompt line
	filterStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	// Footer with the short help
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingTop(1)

	// Empty filter result
	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)
)
