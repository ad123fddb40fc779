package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when no task in the list has the requested ID
	ErrNotFound = errors.New("task not found")
	// ErrInvalidID is returned when an ID string is not a non-negative integer
	ErrInvalidID = errors.New("invalid task id")
)

// Task is a single to-do record
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// MarkDone marks the task as completed
func (t *Task) MarkDone() {
	t.Done = true
}

// MarkUndone clears the completion flag
func (t *Task) MarkUndone() {
	t.Done = false
}

// List is the ordered set of tasks plus the counter used to assign new IDs.
// IDs come from nextID and are never handed out twice, even after a removal.
type List struct {
	tasks  []*Task
	nextID int
}

// NewList returns an empty list whose first task will get ID 1
func NewList() *List {
	return &List{nextID: 1}
}

// NewListFrom builds a list from already persisted tasks. The counter is
// raised past the highest existing ID so a lost or stale counter can never
// produce a duplicate.
func NewListFrom(tasks []*Task, counter int) *List {
	next := counter
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	if next < 1 {
		next = 1
	}

	copied := make([]*Task, len(tasks))
	copy(copied, tasks)
	return &List{tasks: copied, nextID: next}
}

// Tasks returns the tasks in insertion order
func (l *List) Tasks() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Clone returns a deep copy of the list
func (l *List) Clone() *List {
	tasks := make([]*Task, len(l.tasks))
	for i, t := range l.tasks {
		c := *t
		tasks[i] = &c
	}
	return &List{tasks: tasks, nextID: l.nextID}
}

// Len returns the number of tasks
func (l *List) Len() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list holds no tasks
func (l *List) IsEmpty() bool {
	return len(l.tasks) == 0
}

// NextID returns the ID the next added task will receive
func (l *List) NextID() int {
	return l.nextID
}

// Add appends a new pending task with the next free ID. Leading and trailing
// whitespace is stripped from the description.
func (l *List) Add(description string) *Task {
	t := &Task{
		ID:          l.nextID,
		Description: strings.TrimSpace(description),
	}
	l.nextID++
	l.tasks = append(l.tasks, t)
	return t
}

// Find returns the task with the given ID
func (l *List) Find(id int) (*Task, error) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
}

// Remove deletes the task with the given ID and returns it
func (l *List) Remove(id int) (*Task, error) {
	for i, t := range l.tasks {
		if t.ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return t, nil
		}
	}
	return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
}

// ParseID parses user input as a task ID. Surrounding whitespace is ignored;
// anything that is not a non-negative integer wraps ErrInvalidID.
func ParseID(input string) (int, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidID)
	}
	return int(n), nil
}
