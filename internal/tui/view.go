package tui

import (
	"fmt"
	"strings"

	"github.com/ohare93/todo/internal/task"
)

func (m Model) View() string {
	switch m.mode {
	case confirmDeleteView:
		return m.renderConfirmDeleteView()
	case confirmUnmarkView:
		return m.renderConfirmUnmarkView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "\n")
	b.WriteString(renderTaskList(m.list.Tasks(), m.cursor))
	b.WriteString("\n")

	if m.mode == inputView {
		b.WriteString("New task: " + m.textInput.View() + "\n\n")
		b.WriteString(helpStyle.Render("enter = add | esc = cancel"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.message != "" {
		b.WriteString(messageStyle.Render(m.message) + "\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderTaskList(tasks []*task.Task, cursor int) string {
	if len(tasks) == 0 {
		return helpStyle.Render("No tasks found! Press a to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		mark := "[ ]"
		desc := t.Description
		if t.Done {
			mark = doneMarkStyle.Render("[x]")
			desc = doneTextStyle.Render(desc)
		}
		line := fmt.Sprintf("%d %s - %s", t.ID, mark, desc)

		if i == cursor {
			b.WriteString("> " + selectedTaskStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
