package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ohare93/todo/internal/task"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Keep a short list of tasks in a local JSON file",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `todo keeps a short list of tasks in tasks.json in the current directory.

Run without arguments for the interactive menu:
  1 - Add task
  2 - List tasks
  3 - Mark/unmark task
  4 - Remove task
  5 - Quit

The same operations are available for scripting:
  todo add buy milk
  todo list
  todo toggle 1
  todo remove 1

Every change rewrites the whole file. IDs are never reused, even after a
task is removed.`,
	Args: cobra.NoArgs,
	RunE: runRootCommand,
}

// GlobalOptions holds global configuration flags for path overrides
type GlobalOptions struct {
	File       string // Override for the tasks file
	ConfigPath string // Override for the .todo.yaml config file
	Verbose    bool   // Enable debug logging
}

// GlobalOpts holds the parsed global flags (exported for testing)
var GlobalOpts GlobalOptions

// GetConfigOptions returns ConfigOptions based on global flags
func GetConfigOptions() task.ConfigOptions {
	opts := task.DefaultConfigOptions()
	if GlobalOpts.ConfigPath != "" {
		opts.Path = GlobalOpts.ConfigPath
	}
	return opts
}

// LoadConfigForCommand loads Config with options from global flags
func LoadConfigForCommand() (*task.Config, error) {
	return task.LoadConfigWithOptions(GetConfigOptions())
}

// commandEnv bundles what every command needs: config, logger and store
type commandEnv struct {
	config *task.Config
	logger *log.Logger
	store  *task.Store
}

// newCommandEnv loads config and builds the logger and store for cmd.
// The --file flag wins over the config file.
func newCommandEnv(cmd *cobra.Command) (*commandEnv, error) {
	config, err := LoadConfigForCommand()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := NewLogger(cmd.ErrOrStderr(), config.LogLevel, GlobalOpts.Verbose)

	path := config.File
	if GlobalOpts.File != "" {
		path = GlobalOpts.File
	}
	store := task.NewStoreWithConfig(task.StoreConfig{
		Path:   path,
		Logger: logger,
	})

	return &commandEnv{
		config: config,
		logger: logger,
		store:  store,
	}, nil
}

func (e *commandEnv) renderer(w io.Writer) *ListRenderer {
	return NewListRenderer(w, !e.config.NoColor)
}

func (e *commandEnv) save(list *task.List) error {
	if err := e.store.Save(list); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	loop := NewLoop(cmd.InOrStdin(), out, env.store, env.renderer(out))
	return loop.Run(env.store.Load())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteWithIO runs the root command with args and the given streams in
// place of the process ones. Flags from a previous run are cleared first.
func ExecuteWithIO(args []string, in io.Reader, out, errOut io.Writer) error {
	GlobalOpts = GlobalOptions{}
	toggleYes = false
	listWatch = false

	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.File, "file", "", "Tasks file (default \"tasks.json\", or file: from .todo.yaml)")
	rootCmd.PersistentFlags().StringVar(&GlobalOpts.ConfigPath, "config", "", "Config file (default \".todo.yaml\" in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&GlobalOpts.Verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(removeCmd)
}
