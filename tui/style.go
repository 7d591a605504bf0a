package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitby/advent/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))
)

// renderMessage styles one history entry by its kind. The engine tags
// every message, so no text sniffing is needed here.
func renderMessage(kind types.MessageKind, text string) string {
	switch kind {
	case types.MessageSystem:
		return styleSystem.Render(text)
	case types.MessageError:
		return styleError.Render(text)
	case types.MessageSuccess:
		return styleSuccess.Render(text)
	default:
		return styleNarration.Render(text)
	}
}
