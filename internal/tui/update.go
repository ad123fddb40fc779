package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ohare93/todo/internal/watcher"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.list = msg.list
		m.clampCursor()
		return m, nil

	case tasksSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		if m.dirty {
			cmd := m.save()
			return m, cmd
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, nil

	case watcherEventMsg:
		cmds := []tea.Cmd{listenForWatcherEvents(m.fileWatcher)}
		if msg.event.Type == watcher.TasksChanged && !m.unsaved() {
			cmds = append(cmds, loadTasks(m.store))
		}
		return m, tea.Batch(cmds...)

	case watcherErrorMsg:
		m.message = fmt.Sprintf("Watch error: %v", msg.err)
		return m, listenForWatcherEvents(m.fileWatcher)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.quitting {
			return m, nil
		}

		switch m.mode {
		case inputView:
			return m.handleInputKey(msg)
		case confirmDeleteView:
			return m.handleConfirmDeleteKey(msg)
		case confirmUnmarkView:
			return m.handleConfirmUnmarkKey(msg)
		default:
			return m.handleListKey(msg)
		}
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.message = "" // Clear message on navigation
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
			m.message = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		t := m.selected()
		if t == nil {
			m.message = "No tasks to complete!"
			return m, nil
		}
		if t.Done {
			m.mode = confirmUnmarkView
			return m, nil
		}
		t.MarkDone()
		m.message = fmt.Sprintf("Task %d marked as done!", t.ID)
		cmd := m.save()
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		m.mode = inputView
		m.message = ""
		m.textInput.SetValue("")
		cmd := m.textInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		if m.selected() == nil {
			m.message = "No tasks to remove!"
			return m, nil
		}
		m.mode = confirmDeleteView
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.message = "Reloaded"
		return m, loadTasks(m.store)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		desc := strings.TrimSpace(m.textInput.Value())
		m.textInput.Blur()
		m.mode = listView
		if desc == "" {
			m.message = "Nothing to add"
			return m, nil
		}
		added := m.list.Add(desc)
		m.cursor = m.list.Len() - 1
		m.message = fmt.Sprintf("Task %d added!", added.ID)
		cmd := m.save()
		return m, cmd

	case tea.KeyEsc:
		m.textInput.Blur()
		m.mode = listView
		m.message = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = listView

	t := m.selected()
	if t == nil {
		return m, nil
	}

	switch msg.String() {
	case "y", "Y":
		if _, err := m.list.Remove(t.ID); err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.clampCursor()
		m.message = fmt.Sprintf("Task %d removed!", t.ID)
		cmd := m.save()
		return m, cmd
	default:
		m.message = "Deletion cancelled."
		return m, nil
	}
}

// handleConfirmUnmarkKey unmarks the selected task only on 's'; any other key
// leaves it done
func (m Model) handleConfirmUnmarkKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = listView

	t := m.selected()
	if t == nil {
		return m, nil
	}

	switch msg.String() {
	case "s", "S":
		t.MarkUndone()
		m.message = fmt.Sprintf("Task %d unmarked.", t.ID)
		cmd := m.save()
		return m, cmd
	default:
		m.message = "Task remains done."
		return m, nil
	}
}
