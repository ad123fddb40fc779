package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ohare93/todo/internal/task"
	"github.com/ohare93/todo/internal/watcher"
)

type viewMode int

const (
	listView viewMode = iota
	inputView
	confirmDeleteView
	confirmUnmarkView
)

// Store loads and saves the whole task list
type Store interface {
	Load() *task.List
	Save(list *task.List) error
}

type Model struct {
	store Store
	list  *task.List

	// View state
	mode   viewMode
	cursor int
	keys   keyMap
	help   help.Model

	// UI state
	width   int
	height  int
	message string // Success/info messages
	err     error  // Fatal save error; the program quits when set

	// Input state for adding a task
	textInput textinput.Model

	// At most one save runs at a time. A change made while it runs sets
	// dirty, and the newest list is saved once the running save returns.
	// Watcher reloads are skipped until both are clear so an unsaved change
	// is not replaced by older file contents.
	saving   bool
	dirty    bool
	quitting bool // Quit once the last save has landed

	// File watcher
	fileWatcher *watcher.Watcher
}

// InitialModel creates a model showing the tasks currently in store
func InitialModel(store Store) Model {
	return InitialModelWithWatcher(store, nil)
}

// InitialModelWithWatcher creates a model that also reloads the list when
// the watcher reports a change to the tasks file
func InitialModelWithWatcher(store Store, w *watcher.Watcher) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		store:       store,
		list:        store.Load(),
		mode:        listView,
		keys:        defaultKeyMap(),
		help:        help.New(),
		textInput:   ti,
		fileWatcher: w,
	}
}

func (m Model) Init() tea.Cmd {
	if m.fileWatcher != nil {
		return listenForWatcherEvents(m.fileWatcher)
	}
	return nil
}

// Err returns the save error that ended the program, if any
func (m Model) Err() error {
	return m.err
}

// selected returns the task under the cursor, or nil for an empty list
func (m Model) selected() *task.Task {
	tasks := m.list.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// save persists a snapshot of the current list in the background, or marks
// the list dirty when a save is already running
func (m *Model) save() tea.Cmd {
	if m.saving {
		m.dirty = true
		return nil
	}
	m.saving = true
	m.dirty = false
	return saveTasks(m.store, m.list.Clone())
}

// unsaved reports whether a change has not reached the store yet
func (m Model) unsaved() bool {
	return m.saving || m.dirty
}

// quit exits now, or after the running save when one is in flight
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.unsaved() {
		m.message = "Saving..."
		return m, nil
	}
	return m, tea.Quit
}
