package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ohare93/todo/internal/cli"
	"github.com/ohare93/todo/internal/task"
)

// TestEnv holds the test environment setup
type TestEnv struct {
	TempDir    string
	TasksFile  string
	ConfigFile string
}

// SetupTestEnv creates an isolated directory with a config that turns off
// colour, so command output can be compared as plain text
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "todo-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	env := &TestEnv{
		TempDir:    tempDir,
		TasksFile:  filepath.Join(tempDir, task.DefaultTasksFile),
		ConfigFile: filepath.Join(tempDir, ".todo.yaml"),
	}

	if err := os.WriteFile(env.ConfigFile, []byte("no_color: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	return env
}

// CleanupTestEnv removes the test environment
func CleanupTestEnv(t *testing.T, env *TestEnv) {
	t.Helper()

	if err := os.RemoveAll(env.TempDir); err != nil {
		t.Logf("Warning: Failed to remove temp dir %s: %v", env.TempDir, err)
	}
}

// Result is the captured output of one command run
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Run executes the todo command with input as stdin, pointed at the
// environment's tasks and config files
func (env *TestEnv) Run(t *testing.T, input string, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	full := append([]string{"--file", env.TasksFile, "--config", env.ConfigFile}, args...)
	err := cli.ExecuteWithIO(full, strings.NewReader(input), &stdout, &stderr)

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// MustRun is Run that fails the test on a command error
func (env *TestEnv) MustRun(t *testing.T, input string, args ...string) string {
	t.Helper()

	res := env.Run(t, input, args...)
	if res.Err != nil {
		t.Fatalf("todo %v failed: %v\nstderr: %s", args, res.Err, res.Stderr)
	}
	return res.Stdout
}

// GetStore returns a store reading the environment's tasks file
func (env *TestEnv) GetStore(t *testing.T) *task.Store {
	t.Helper()
	return task.NewStore(env.TasksFile)
}

// ReadTasksFile returns the raw tasks file contents
func (env *TestEnv) ReadTasksFile(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(env.TasksFile)
	if err != nil {
		t.Fatalf("Failed to read tasks file: %v", err)
	}
	return string(data)
}

// WriteTasksFile replaces the tasks file contents
func (env *TestEnv) WriteTasksFile(t *testing.T, content string) {
	t.Helper()

	if err := os.WriteFile(env.TasksFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write tasks file: %v", err)
	}
}

// AssertTasks checks the persisted descriptions in order
func (env *TestEnv) AssertTasks(t *testing.T, want ...string) []*task.Task {
	t.Helper()

	tasks := env.GetStore(t).Load().Tasks()
	if len(tasks) != len(want) {
		t.Fatalf("Expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, w := range want {
		if tasks[i].Description != w {
			t.Errorf("Task %d: expected description %q, got %q", i, w, tasks[i].Description)
		}
	}
	return tasks
}
