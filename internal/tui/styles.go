package tui

import "github.com/charmbracelet/lipgloss"

var (
	darkGray = lipgloss.Color("#444444")
	white    = lipgloss.Color("#FFFFFF")

	headerBorder = lipgloss.Border{
		Top:         "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "│",
		BottomRight: "│",
	}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(darkGray).
			Align(lipgloss.Center).
			Padding(1, 0).
			Border(headerBorder, true, true, false, true).
			BorderForeground(darkGray)
	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(darkGray)
	addButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(white).
			Background(darkGray)
	selectedNoteStyle = lipgloss.NewStyle().Bold(true)
	emptyNoteStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	deleteIconStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	placeholderStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true)
)
