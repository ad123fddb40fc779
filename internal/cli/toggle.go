package cli

import (
	"fmt"

	"github.com/ohare93/todo/internal/task"
	"github.com/spf13/cobra"
)

var (
	toggleYes bool
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a task done, or unmark a done task",
	Long: `Mark a pending task as done. If the task is already done it is unmarked
instead, after confirmation.

On a terminal you are asked to press 's' to confirm. Without a terminal,
unmarking requires --yes.

Examples:
  todo toggle 1
  todo toggle 1 --yes`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: CompleteTaskIDs,
	RunE:              runToggle,
}

func init() {
	toggleCmd.Flags().BoolVarP(&toggleYes, "yes", "y", false, "Unmark a done task without asking")
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := task.ParseID(args[0])
	if err != nil {
		return fmt.Errorf("please enter a valid number: %w", err)
	}

	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	list := env.store.Load()
	t, err := list.Find(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !t.Done {
		t.MarkDone()
		if err := env.save(list); err != nil {
			return err
		}
		fmt.Fprintf(out, "Task %d marked as done!\n", id)
		return nil
	}

	confirmed := toggleYes
	if !confirmed {
		in, ok := terminalFile(cmd.InOrStdin())
		if !ok {
			return fmt.Errorf("task %d is done; pass --yes to unmark it", id)
		}
		confirmed, err = ConfirmSingleKey(in, out, fmt.Sprintf("Task %d is done. Unmark it?", id))
		if err != nil {
			return fmt.Errorf("operation cancelled")
		}
	}

	if !confirmed {
		fmt.Fprintln(out, "Task remains done.")
		return nil
	}

	t.MarkUndone()
	if err := env.save(list); err != nil {
		return err
	}
	fmt.Fprintf(out, "Task %d unmarked.\n", id)
	return nil
}
