package task

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTasksFile is the tasks file used when nothing else is configured,
	// relative to the working directory
	DefaultTasksFile = "tasks.json"
	counterSuffix    = ".meta.yaml"
)

//go:embed tasks.schema.json
var tasksSchemaSource string

var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchemaSource)

// StoreConfig holds configurable options for Store
type StoreConfig struct {
	Path   string      // Tasks file (default: tasks.json)
	Logger *log.Logger // Receives diagnostics; nil discards them
}

// Store translates between a List and its files on disk: the tasks array as
// pretty-printed JSON and the next-ID counter as a small YAML sidecar.
type Store struct {
	tasksPath   string
	counterPath string
	logger      *log.Logger
}

type counterState struct {
	NextID int `yaml:"next_id"`
}

// NewStore creates a store backed by the given tasks file
func NewStore(path string) *Store {
	return NewStoreWithConfig(StoreConfig{Path: path})
}

// NewStoreWithConfig creates a store with custom configuration
func NewStoreWithConfig(config StoreConfig) *Store {
	path := config.Path
	if path == "" {
		path = DefaultTasksFile
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Store{
		tasksPath:   path,
		counterPath: strings.TrimSuffix(path, filepath.Ext(path)) + counterSuffix,
		logger:      logger,
	}
}

// Path returns the tasks file path
func (s *Store) Path() string {
	return s.tasksPath
}

// CounterPath returns the path of the next-ID sidecar
func (s *Store) CounterPath() string {
	return s.counterPath
}

// Load reads the whole list. It never fails: a missing, unreadable or
// malformed tasks file yields an empty list, and a missing counter is
// rebuilt from the highest ID.
func (s *Store) Load() *List {
	tasks, err := s.readTasks()
	if err != nil {
		s.logger.Warn("discarding unreadable tasks file", "path", s.tasksPath, "err", err)
		tasks = nil
	}
	return NewListFrom(tasks, s.readCounter())
}

func (s *Store) readTasks() ([]*Task, error) {
	data, err := os.ReadFile(s.tasksPath)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no tasks file yet", "path", s.tasksPath)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeTasks(data)
}

// decodeTasks parses and validates the tasks array
func decodeTasks(data []byte) ([]*Task, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid JSON: trailing data")
	}
	if err := tasksSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("does not match task schema: %w", err)
	}

	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
	}
	return tasks, nil
}

func (s *Store) readCounter() int {
	data, err := os.ReadFile(s.counterPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("ignoring unreadable id counter", "path", s.counterPath, "err", err)
		}
		return 0
	}

	var state counterState
	if err := yaml.Unmarshal(data, &state); err != nil {
		s.logger.Warn("ignoring malformed id counter", "path", s.counterPath, "err", err)
		return 0
	}
	return state.NextID
}

// Save rewrites the tasks file and the counter sidecar in full
func (s *Store) Save(l *List) error {
	tasks := l.Tasks()
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.tasksPath, data); err != nil {
		return fmt.Errorf("failed to write tasks file: %w", err)
	}

	counter, err := yaml.Marshal(counterState{NextID: l.NextID()})
	if err != nil {
		return fmt.Errorf("failed to marshal id counter: %w", err)
	}
	if err := writeFileAtomic(s.counterPath, counter); err != nil {
		return fmt.Errorf("failed to write id counter: %w", err)
	}

	s.logger.Debug("saved tasks", "path", s.tasksPath, "count", len(tasks), "next_id", l.NextID())
	return nil
}

// writeFileAtomic writes to a temp file next to path and renames it over path
func writeFileAtomic(path string, data []byte) error {
	tempPath := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
