package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file change event
type EventType int

const (
	TasksChanged EventType = iota
	CounterChanged
)

// Event represents a file change event
type Event struct {
	Type EventType
	Path string
}

// Watcher watches a tasks file and its counter sidecar for changes.
// The parent directory is watched rather than the files themselves because
// saves replace the files by rename.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Event
	Errors  chan error
	done    chan struct{}
	mu      sync.Mutex
	running bool
	files   map[string]EventType // base name -> event type
}

// New creates a new file watcher
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		Events:  make(chan Event, 100),
		Errors:  make(chan error, 10),
		done:    make(chan struct{}),
		files:   make(map[string]EventType),
	}, nil
}

// WatchTasks adds watchers for a tasks file and its counter sidecar.
// The files themselves need not exist yet, but their directory must.
func (w *Watcher) WatchTasks(tasksPath, counterPath string) error {
	dir := filepath.Dir(tasksPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("tasks directory does not exist: %s", dir)
	}

	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch tasks directory: %w", err)
	}

	w.mu.Lock()
	w.files[filepath.Base(tasksPath)] = TasksChanged
	if counterPath != "" {
		if filepath.Dir(counterPath) != dir {
			w.mu.Unlock()
			return fmt.Errorf("counter file must live next to the tasks file: %s", counterPath)
		}
		w.files[filepath.Base(counterPath)] = CounterChanged
	}
	w.mu.Unlock()

	return nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	fsw := w.watcher
	w.mu.Unlock()

	go w.eventLoop(fsw)
}

// eventLoop processes file system events
func (w *Watcher) eventLoop(fsw *fsnotify.Watcher) {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			// Saves show up as a create (rename into place) or a write
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			e := w.classifyEvent(event.Name)
			if e != nil {
				// Non-blocking send
				select {
				case w.Events <- *e:
				default:
					// Channel full, skip event
				}
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// classifyEvent maps a changed path to an event, or nil for unrelated files
// such as the temp files written during a save
func (w *Watcher) classifyEvent(path string) *Event {
	w.mu.Lock()
	eventType, ok := w.files[filepath.Base(path)]
	w.mu.Unlock()

	if !ok {
		return nil
	}
	return &Event{Type: eventType, Path: path}
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}

	if w.running {
		close(w.done)
		w.running = false
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

// Close is an alias for Stop
func (w *Watcher) Close() error {
	return w.Stop()
}
