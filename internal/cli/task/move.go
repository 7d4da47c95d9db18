package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <column|next|prev>",
		Short: "Move a task to another column",
		Long: `Move a task to a column by name, or to the next/previous column.

Examples:
  kanban task move 3f2a inprogress
  kanban task move 3f2a next
  kanban task move 3f2a "To Do"
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	task, err := findTask(cliInstance, args[0])
	if err != nil {
		return cli.HandleError(formatter, "TASK_NOT_FOUND", err)
	}

	from := task.Column.OrDefault()
	to, err := targetColumn(from, args[1])
	if err != nil {
		return cli.HandleError(formatter, "INVALID_COLUMN", err)
	}

	if err := cliInstance.Store().MoveTask(ctx, task.ID, to); err != nil {
		return cli.HandleError(formatter, "MOVE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"task_id": task.ID,
			"from":    from,
			"to":      to,
		})
	}

	fmt.Printf("✓ Task '%s' moved from %s to %s\n", task.Title, from.Title(), to.Title())
	return nil
}

// targetColumn resolves next/prev relative to from, or a column name
func targetColumn(from models.Column, target string) (models.Column, error) {
	columns := models.Columns()
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "next":
		i := from.Index()
		if i+1 >= len(columns) {
			return "", fmt.Errorf("%w: task is already in the last column (%s)", models.ErrInvalidColumn, from.Title())
		}
		return columns[i+1], nil
	case "prev":
		i := from.Index()
		if i <= 0 {
			return "", fmt.Errorf("%w: task is already in the first column (%s)", models.ErrInvalidColumn, from.Title())
		}
		return columns[i-1], nil
	default:
		return models.ParseColumn(target)
	}
}
