package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			MarginBottom(1)

	selectedTaskStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Bold(true)

	doneMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")) // Green

	doneTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")) // Gray

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")) // Yellow

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)
