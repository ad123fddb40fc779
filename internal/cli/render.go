package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ohare93/todo/internal/task"
)

const emptyListMessage = "No tasks found!"

// ListRenderer formats tasks as "ID [x] - description" lines. Styles are bound
// to the destination writer, so pipes and buffers always get plain text.
type ListRenderer struct {
	color    bool
	idStyle  lipgloss.Style
	doneMark lipgloss.Style
	doneText lipgloss.Style
}

// NewListRenderer creates a renderer for w. With color false no styling is
// applied even on a terminal.
func NewListRenderer(w io.Writer, color bool) *ListRenderer {
	r := lipgloss.NewRenderer(w)
	return &ListRenderer{
		color:    color,
		idStyle:  r.NewStyle().Bold(true),
		doneMark: r.NewStyle().Foreground(lipgloss.Color("2")), // Green
		doneText: r.NewStyle().Faint(true),
	}
}

// Render returns one line per task, or the empty-list message
func (r *ListRenderer) Render(tasks []*task.Task) string {
	if len(tasks) == 0 {
		return emptyListMessage + "\n"
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(r.Line(t))
		b.WriteString("\n")
	}
	return b.String()
}

// Line formats a single task
func (r *ListRenderer) Line(t *task.Task) string {
	id := fmt.Sprintf("%d", t.ID)
	mark := statusMark(t)
	desc := t.Description

	if r.color {
		id = r.idStyle.Render(id)
		if t.Done {
			mark = r.doneMark.Render(mark)
			desc = r.doneText.Render(desc)
		}
	}

	return fmt.Sprintf("%s %s - %s", id, mark, desc)
}

func statusMark(t *task.Task) string {
	if t.Done {
		return "[x]"
	}
	return "[ ]"
}
