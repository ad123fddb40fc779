package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/ohare93/todo/internal/task"
	"github.com/ohare93/todo/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	listWatch bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List every task as "ID [x] - description", in the order they were added.

With --watch the list is printed again whenever the tasks file changes,
until interrupted with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "Reprint the list whenever the tasks file changes")
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := env.renderer(out)
	if !listWatch {
		fmt.Fprint(out, renderer.Render(env.store.Load().Tasks()))
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, clearScreen := terminalFile(out)
	return watchList(ctx, out, env.store, renderer, env.logger, clearScreen)
}

// watchList prints the list, then prints it again after every change to the
// tasks file until ctx is done
func watchList(ctx context.Context, out io.Writer, store *task.Store, renderer *ListRenderer, logger *log.Logger, clearScreen bool) error {
	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.WatchTasks(store.Path(), store.CounterPath()); err != nil {
		return err
	}
	w.Start()

	show := func() {
		if clearScreen {
			fmt.Fprint(out, "\033[H\033[2J")
		}
		fmt.Fprint(out, renderer.Render(store.Load().Tasks()))
	}
	show()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-w.Events:
			if event.Type != watcher.TasksChanged {
				continue
			}
			logger.Debug("tasks file changed", "path", event.Path)
			show()
		case err := <-w.Errors:
			logger.Warn("watch error", "err", err)
		}
	}
}
