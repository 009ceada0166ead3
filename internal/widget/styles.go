package widget

import "github.com/charmbracelet/lipgloss"

var (
	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))

	chipStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chipSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	noteRowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noteSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
	noteMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	emptyStyle = lipgloss.NewStyle().Faint(true)

	gridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)
