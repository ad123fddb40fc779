package cli

import (
	"fmt"

	"github.com/ohare93/todo/internal/task"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a task permanently",
	Long: `Remove a task permanently. Its ID is not handed out again.

Examples:
  todo remove 3
  todo rm 3`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: CompleteTaskIDs,
	RunE:              runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return fmt.Errorf("please enter a valid number: %w", err)
	}

	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	list := env.store.Load()
	if _, err := list.Remove(id); err != nil {
		return err
	}
	if err := env.save(list); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d removed!\n", id)
	return nil
}
