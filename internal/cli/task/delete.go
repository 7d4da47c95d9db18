package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task by id or unique prefix (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	task, err := findTask(cliInstance, args[0])
	if err != nil {
		return cli.HandleError(formatter, "TASK_NOT_FOUND", err)
	}

	// Ask for confirmation unless force, json or quiet mode
	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Delete task %s: '%s'? (y/N): ", shortID(task.ID), task.Title)
		var response string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.Store().DeleteTask(ctx, task.ID); err != nil {
		return cli.HandleError(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"task_id": task.ID})
	}

	fmt.Printf("✓ Task '%s' deleted successfully\n", task.Title)
	return nil
}
