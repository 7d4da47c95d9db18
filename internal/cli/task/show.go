package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Long:  "Show every field of a task. The description is rendered as markdown. The id may be a unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	fmt.Println(renderDetail(task, cliInstance.Store().CurrentBoard()))
	return nil
}
