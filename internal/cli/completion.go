package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// CompleteTaskIDs provides completion suggestions for task IDs, with the
// description shown alongside each one
func CompleteTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	env, err := newCommandEnv(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, t := range env.store.Load().Tasks() {
		id := strconv.Itoa(t.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+t.Description)
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
