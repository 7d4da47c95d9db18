package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update fields of an existing task. Only the flags you pass change;
the id may be a unique prefix.

Examples:
  kanban task update 3f2a --title="New title"
  kanban task update 3f2a --priority=low --due=""
  echo "## Notes" | kanban task update 3f2a --description=-
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cli.AddTaskFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

var errNoChanges = errors.New("no fields to update")

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	if cmd.Flags().NFlag() == countOutputFlags(cmd) {
		return cli.Report(formatter, "NO_UPDATES", cli.ExitUsage, errNoChanges.Error(),
			"Pass at least one of --title, --description, --priority, --category, --due, --column", errNoChanges)
	}

	current, err := findTask(cliInstance, args[0])
	if err != nil {
		return cli.HandleError(formatter, "TASK_NOT_FOUND", err)
	}

	fields, err := cli.ApplyTaskFlags(cmd, current.Fields())
	if err != nil {
		return cli.HandleError(formatter, "INVALID_INPUT", err)
	}

	task, err := cliInstance.Store().UpdateTask(ctx, current.ID, fields)
	if err != nil {
		return cli.HandleError(formatter, "TASK_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"task": task})
	}

	fmt.Printf("✓ Task '%s' updated successfully (ID: %s)\n", task.Title, task.ID)
	printSummary(task)
	return nil
}

func countOutputFlags(cmd *cobra.Command) int {
	n := 0
	for _, name := range []string{"json", "quiet"} {
		if cmd.Flags().Changed(name) {
			n++
		}
	}
	return n
}
