package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task on the current board.

Examples:
  # Simple task (human-readable output)
  kanban task create --title="Fix bug"

  # JSON output for agents
  kanban task create --title="Fix bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(kanban task create --title="Fix bug" --quiet)

  # Full example with all options
  kanban task create \
    --title="Write release notes" \
    --description="Summarize the changes since v1" \
    --priority=high \
    --category=Docs \
    --due=2025-07-01 \
    --column=inprogress
`,
		RunE: runCreate,
	}

	cli.AddTaskFlags(cmd)
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	fields, err := cli.ApplyTaskFlags(cmd, models.TaskFields{})
	if err != nil {
		return cli.HandleError(formatter, "INVALID_INPUT", err)
	}

	task, err := cliInstance.Store().CreateTask(ctx, fields)
	if err != nil {
		return cli.HandleError(formatter, "TASK_CREATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Println(task.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"board": cliInstance.Store().CurrentBoard(),
			"task":  task,
		})
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
	printSummary(task)
	return nil
}
