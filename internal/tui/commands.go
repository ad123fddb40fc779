package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ohare93/todo/internal/task"
	"github.com/ohare93/todo/internal/watcher"
)

type tasksLoadedMsg struct {
	list *task.List
}

func loadTasks(store Store) tea.Cmd {
	return func() tea.Msg {
		return tasksLoadedMsg{list: store.Load()}
	}
}

type tasksSavedMsg struct {
	err error
}

func saveTasks(store Store, list *task.List) tea.Cmd {
	return func() tea.Msg {
		return tasksSavedMsg{err: store.Save(list)}
	}
}

// Watcher event messages
type watcherEventMsg struct {
	event watcher.Event
}

type watcherErrorMsg struct {
	err error
}

// listenForWatcherEvents creates a command that listens for watcher events
func listenForWatcherEvents(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-w.Events:
			return watcherEventMsg{event: event}
		case err := <-w.Errors:
			return watcherErrorMsg{err: err}
		}
	}
}
