package tui

import (
	"io"
	"math/rand"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ohare93/todo/internal/task"
)

// slowStore sleeps a random time in Save and tracks how many saves overlap
type slowStore struct {
	mu        sync.Mutex
	list      *task.List
	saves     int
	active    int
	maxActive int
	maxDelay  time.Duration
}

func (s *slowStore) Load() *task.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.list == nil {
		return task.NewList()
	}
	return s.list.Clone()
}

func (s *slowStore) Save(list *task.List) error {
	s.mu.Lock()
	s.active++
	if s.active > s.maxActive {
		s.maxActive = s.active
	}
	s.mu.Unlock()

	time.Sleep(time.Duration(rand.Int63n(int64(s.maxDelay))) + s.maxDelay/2)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active--
	s.saves++
	s.list = list.Clone()
	return nil
}

func (s *slowStore) snapshot() (saves, maxActive int, tasks []*task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves, s.maxActive, s.list.Tasks()
}

// keyReader hands the program one key per Read so each becomes its own
// KeyMsg, then blocks until closed
type keyReader struct {
	keys  []byte
	pause time.Duration
	done  chan struct{}
}

func (r *keyReader) Read(p []byte) (int, error) {
	if len(r.keys) == 0 {
		<-r.done
		return 0, io.EOF
	}
	time.Sleep(r.pause)
	p[0] = r.keys[0]
	r.keys = r.keys[1:]
	return 1, nil
}

func TestQuitWaitsForRunningSave(t *testing.T) {
	store := newStoreWith("a")
	model := InitialModel(store)

	updated, saveCmd := model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(Model)

	updated, cmd := model.Update(runes("q"))
	model = updated.(Model)
	if cmd != nil {
		t.Fatal("Expected quit to wait for the running save")
	}
	if !model.quitting {
		t.Error("Expected model to be quitting")
	}

	// Keys are ignored while waiting to quit
	updated, _ = model.Update(runes("x"))
	model = updated.(Model)
	if model.mode != listView {
		t.Errorf("Expected to stay in listView, got %v", model.mode)
	}

	updated, cmd = model.Update(saveCmd())
	model = updated.(Model)
	if cmd == nil {
		t.Fatal("Expected quit once the save landed")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if store.saves != 1 || !store.list.Tasks()[0].Done {
		t.Error("Expected the done task to be saved")
	}
}

func TestChangesDuringSaveAreSavedAfterIt(t *testing.T) {
	store := newStoreWith("a", "b")
	model := InitialModel(store)

	updated, first := model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(Model)

	// Remove task 1 while the first save is still running
	updated, cmd := model.Update(runes("x"))
	model = updated.(Model)
	updated, cmd = model.Update(runes("y"))
	model = updated.(Model)
	if cmd != nil {
		t.Fatal("Expected no second save while one is running")
	}
	if !model.dirty {
		t.Fatal("Expected the removal to be pending")
	}

	updated, second := model.Update(first())
	model = updated.(Model)
	if second == nil {
		t.Fatal("Expected the newest list to be saved next")
	}
	updated, cmd = model.Update(second())
	model = updated.(Model)

	if cmd != nil {
		t.Error("Expected no further saves")
	}
	if model.unsaved() {
		t.Error("Expected every change to be saved")
	}
	tasks := store.list.Tasks()
	if store.saves != 2 || len(tasks) != 1 || tasks[0].Description != "b" {
		t.Errorf("Expected 2 saves ending with only task b, got %d saves and %d tasks", store.saves, len(tasks))
	}
}

func TestProgramSavesEveryChangeBeforeExit(t *testing.T) {
	list := task.NewList()
	list.Add("a")
	list.Add("b")
	store := &slowStore{list: list, maxDelay: 60 * time.Millisecond}

	// Mark task 1 done, delete it, mark task 2 done, then quit
	in := &keyReader{keys: []byte(" xyj q"), pause: 5 * time.Millisecond, done: make(chan struct{})}
	defer close(in.done)

	p := tea.NewProgram(InitialModel(store),
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	result := make(chan tea.Model, 1)
	errs := make(chan error, 1)
	go func() {
		final, err := p.Run()
		errs <- err
		result <- final
	}()

	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		p.Kill()
		t.Fatal("program did not exit")
	}

	final := (<-result).(Model)
	if final.Err() != nil {
		t.Errorf("Unexpected save error: %v", final.Err())
	}

	saves, maxActive, tasks := store.snapshot()
	if saves == 0 {
		t.Fatal("Expected at least one save before exit")
	}
	if maxActive != 1 {
		t.Errorf("Expected saves to run one at a time, saw %d at once", maxActive)
	}
	if len(tasks) != 1 || tasks[0].Description != "b" || !tasks[0].Done {
		t.Errorf("Expected only task b, done, on disk; got %d tasks", len(tasks))
	}
}
