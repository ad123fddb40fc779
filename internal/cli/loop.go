package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ohare93/todo/internal/task"
)

const menu = `
--- Available options ---
1 - Add task
2 - List tasks
3 - Mark/unmark task
4 - Remove task
5 - Quit
`

// Saver persists the full task list
type Saver interface {
	Save(list *task.List) error
}

// Loop is the interactive menu. Run owns the task list for the whole session
// and lends it to one handler at a time.
//
// The file is rewritten only when a handler changed the list, and once more
// on quit. Bad input, unknown IDs and a declined confirmation leave the file
// untouched.
type Loop struct {
	in       *bufio.Reader
	out      io.Writer
	store    Saver
	renderer *ListRenderer
}

// NewLoop creates a loop reading lines from in and writing to out
func NewLoop(in io.Reader, out io.Writer, store Saver, renderer *ListRenderer) *Loop {
	return &Loop{
		in:       bufio.NewReader(in),
		out:      out,
		store:    store,
		renderer: renderer,
	}
}

// Run presents the menu until the user quits or input ends. It returns an
// error only when reading input or saving fails.
func (l *Loop) Run(list *task.List) error {
	fmt.Fprintln(l.out, "\n=== To-Do CLI ===")

	for {
		fmt.Fprint(l.out, menu+"\n")
		choice, err := l.prompt("Choose an option: ")
		if err != nil {
			return l.stop(list, err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = l.add(list)
		case "2":
			l.list(list)
		case "3":
			err = l.toggle(list)
		case "4":
			err = l.remove(list)
		case "5":
			return l.quit(list)
		default:
			fmt.Fprintln(l.out, "Invalid option")
		}

		if err != nil {
			return l.stop(list, err)
		}
	}
}

// stop ends the loop after a handler error; end of input counts as quit
func (l *Loop) stop(list *task.List, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(l.out)
		return l.quit(list)
	}
	return err
}

func (l *Loop) add(list *task.List) error {
	desc, err := l.prompt("Enter the task description: ")
	if err != nil {
		return err
	}

	list.Add(desc)
	fmt.Fprintln(l.out, "Task added!")
	return l.save(list)
}

func (l *Loop) list(list *task.List) {
	fmt.Fprintln(l.out, "\n--- Your tasks ---")
	fmt.Fprint(l.out, l.renderer.Render(list.Tasks()))
}

func (l *Loop) toggle(list *task.List) error {
	if list.IsEmpty() {
		fmt.Fprintln(l.out, "No tasks to complete!")
		return nil
	}

	t, err := l.promptTask(list, "\nEnter the ID of the task to mark/unmark: ")
	if t == nil {
		return err
	}

	if !t.Done {
		t.MarkDone()
		fmt.Fprintf(l.out, "Task %d marked as done!\n", t.ID)
		return l.save(list)
	}

	answer, err := l.prompt(fmt.Sprintf("Task %d is done. Unmark it? (s/n): ", t.ID))
	if err != nil {
		return err
	}
	if !IsAffirmative(answer) {
		fmt.Fprintln(l.out, "Task remains done.")
		return nil
	}

	t.MarkUndone()
	fmt.Fprintf(l.out, "Task %d unmarked.\n", t.ID)
	return l.save(list)
}

func (l *Loop) remove(list *task.List) error {
	if list.IsEmpty() {
		fmt.Fprintln(l.out, "No tasks to remove!")
		return nil
	}

	t, err := l.promptTask(list, "\nEnter the ID of the task to remove: ")
	if t == nil {
		return err
	}

	if _, err := list.Remove(t.ID); err != nil {
		return err
	}
	fmt.Fprintf(l.out, "Task %d removed!\n", t.ID)
	return l.save(list)
}

func (l *Loop) quit(list *task.List) error {
	fmt.Fprintln(l.out, "Exiting...")
	return l.save(list)
}

// promptTask asks for an ID and looks it up. A nil task with a nil error
// means the problem was already reported to the user.
func (l *Loop) promptTask(list *task.List, label string) (*task.Task, error) {
	input, err := l.prompt(label)
	if err != nil {
		return nil, err
	}

	id, err := task.ParseID(input)
	if err != nil {
		fmt.Fprintln(l.out, "Please enter a valid number!")
		return nil, nil
	}

	t, err := list.Find(id)
	if err != nil {
		fmt.Fprintf(l.out, "Task with ID %d not found!\n", id)
		return nil, nil
	}
	return t, nil
}

// prompt prints label and reads one line without its line ending.
// A final line without a newline is still returned; io.EOF means no input is left.
func (l *Loop) prompt(label string) (string, error) {
	fmt.Fprint(l.out, label)

	line, err := l.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Loop) save(list *task.List) error {
	if err := l.store.Save(list); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
