package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderConfirmDeleteView() string {
	t := m.selected()
	if t == nil {
		return "No task selected"
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("1")). // Red
		Render("DELETE TASK")
	b.WriteString(title + "\n\n")

	b.WriteString(fmt.Sprintf("ID:          %d\n", t.ID))
	b.WriteString(fmt.Sprintf("Description: %s\n", t.Description))
	b.WriteString(fmt.Sprintf("Done:        %t\n", t.Done))
	b.WriteString("\n")

	b.WriteString(warningStyle.Render("This will permanently delete the task.") + "\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Delete this task? [y/N]") + "\n\n")
	b.WriteString(helpStyle.Render("y = confirm | any other key = cancel"))

	return b.String()
}

func (m Model) renderConfirmUnmarkView() string {
	t := m.selected()
	if t == nil {
		return "No task selected"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Task %d is done. Unmark it? (s/n)\n\n", t.ID))
	b.WriteString(helpStyle.Render("s = unmark | any other key = keep it done"))
	return b.String()
}
