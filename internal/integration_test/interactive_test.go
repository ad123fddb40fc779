package integration_test

import (
	"strings"
	"testing"
)

// These tests run the menu loop end to end with scripted stdin.

// TestInteractiveSession tests a full add, list, toggle, remove, quit session
func TestInteractiveSession(t *testing.T) {
	env := SetupTestEnv(t)
	defer CleanupTestEnv(t, env)

	input := strings.Join([]string{
		"1", "buy milk",
		"2",
		"3", "1",
		"2",
		"4", "1",
		"5",
	}, "\n") + "\n"

	out := env.MustRun(t, input)

	for _, want := range []string{
		"=== To-Do CLI ===",
		"Task added!",
		"1 [ ] - buy milk",
		"Task 1 marked as done!",
		"1 [x] - buy milk",
		"Task 1 removed!",
		"Exiting...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q", want)
		}
	}

	if got := env.ReadTasksFile(t); got != "[]\n" {
		t.Errorf("Expected empty array file, got %q", got)
	}
}

// TestInteractiveUnmark tests that only "s" unmarks a done task
func TestInteractiveUnmark(t *testing.T) {
	env := SetupTestEnv(t)
	defer CleanupTestEnv(t, env)

	env.MustRun(t, "", "add", "a")
	env.MustRun(t, "", "toggle", "1")

	out := env.MustRun(t, "3\n1\nn\n5\n")
	if !strings.Contains(out, "Task remains done.") {
		t.Errorf("Expected decline message, got:\n%s", out)
	}
	if !env.AssertTasks(t, "a")[0].Done {
		t.Fatal("Declining should keep the task done")
	}

	out = env.MustRun(t, "3\n1\nS\n5\n")
	if !strings.Contains(out, "Task 1 unmarked.") {
		t.Errorf("Expected unmark message, got:\n%s", out)
	}
	if env.AssertTasks(t, "a")[0].Done {
		t.Error("Answering S should unmark the task")
	}
}

// TestInteractiveBadInput tests messages for invalid menu input
func TestInteractiveBadInput(t *testing.T) {
	env := SetupTestEnv(t)
	defer CleanupTestEnv(t, env)

	out := env.MustRun(t, "3\n4\n9\n1\nx\n3\nabc\n4\n42\n5\n")

	for _, want := range []string{
		"No tasks to complete!",
		"No tasks to remove!",
		"Invalid option",
		"Please enter a valid number!",
		"Task with ID 42 not found!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q", want)
		}
	}
	env.AssertTasks(t, "x")
}

// TestInteractiveEOFSaves tests that running out of input behaves like quit
func TestInteractiveEOFSaves(t *testing.T) {
	env := SetupTestEnv(t)
	defer CleanupTestEnv(t, env)

	out := env.MustRun(t, "1\nwalk dog")
	if !strings.Contains(out, "Exiting...") {
		t.Errorf("Expected quit on end of input, got:\n%s", out)
	}
	env.AssertTasks(t, "walk dog")
}

// TestInteractiveIDsSurviveRestart tests the counter across sessions
func TestInteractiveIDsSurviveRestart(t *testing.T) {
	env := SetupTestEnv(t)
	defer CleanupTestEnv(t, env)

	env.MustRun(t, "1\na\n1\nb\n4\n2\n5\n")
	env.MustRun(t, "1\nc\n5\n")

	tasks := env.AssertTasks(t, "a", "c")
	if tasks[1].ID != 3 {
		t.Errorf("Expected ID 3 after restart, got %d", tasks[1].ID)
	}
}
