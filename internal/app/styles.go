package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle   = lipgloss.NewStyle().Faint(true)

	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24"))
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124"))

	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(1, 2)
	confirmButtonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	confirmSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	formLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
