package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ohare93/todo/internal/tui"
	"github.com/ohare93/todo/internal/watcher"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch a full-screen terminal interface for the task list.

Navigation:
  ↑/k        Move up
  ↓/j        Move down

Tasks:
  Space/Enter  Mark done (a done task asks before unmarking, press s)
  a            Add task
  x/d          Remove task (with confirmation)

Other:
  R          Reload from disk (shift+r)
  ?          Toggle help
  q/Esc      Quit

Changes made to the tasks file by other commands are picked up while the
TUI is open.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	// Reloading on external changes is optional; run without it if the
	// watcher cannot be set up
	var w *watcher.Watcher
	if fw, err := watcher.New(); err != nil {
		env.logger.Warn("file watcher unavailable", "err", err)
	} else if err := fw.WatchTasks(env.store.Path(), env.store.CounterPath()); err != nil {
		env.logger.Warn("file watcher unavailable", "err", err)
		fw.Close()
	} else {
		fw.Start()
		defer fw.Close()
		w = fw
	}

	var model tui.Model
	if w != nil {
		model = tui.InitialModelWithWatcher(env.store, w)
	} else {
		model = tui.InitialModel(env.store)
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return fmt.Errorf("failed to save tasks: %w", m.Err())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
