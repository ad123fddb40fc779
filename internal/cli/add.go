package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description...>",
	Short: "Add a task",
	Long: `Add a task with the given description. All arguments are joined with
spaces, and surrounding whitespace is trimmed.

Examples:
  todo add buy milk
  todo add "call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	env, err := newCommandEnv(cmd)
	if err != nil {
		return err
	}

	list := env.store.Load()
	added := list.Add(strings.Join(args, " "))
	if err := env.save(list); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d added\n", added.ID)
	return nil
}
