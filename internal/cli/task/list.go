package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the tasks of the current board, grouped by column.

Examples:
  kanban task list --query=readme
  kanban task list --priority=high --sort=dueDate_asc
  kanban task list --category=Docs --column=todo --json
`,
		RunE: runList,
	}

	cmd.Flags().String("query", "", "Only tasks whose title or description contains this text")
	cmd.Flags().String("priority", "", "Only tasks with this priority")
	cmd.Flags().String("category", "", "Only tasks with this category")
	cmd.Flags().String("column", "", "Only tasks in this column")
	cmd.Flags().String("sort", "", "Sort: createdAt_asc, createdAt_desc, dueDate_asc, dueDate_desc, priority_asc, priority_desc")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd.Flags())

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, "INITIALIZATION_ERROR", err)
	}

	filter, column, sortKey, err := parseListFlags(cmd)
	if err != nil {
		return cli.HandleError(formatter, "INVALID_INPUT", err)
	}

	store := cliInstance.Store()
	tasks := board.Apply(store.GetTasks(), filter, sortKey)
	if column != "" {
		tasks = board.GroupByColumn(tasks)[column]
	}

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{
			"board": store.CurrentBoard(),
			"tasks": tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Board %s: %d tasks\n", styles.TitleStyle.Render(store.CurrentBoard()), len(tasks))
	groups := board.GroupByColumn(tasks)
	for _, c := range models.Columns() {
		if len(groups[c]) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", styles.SectionStyle.Render(c.Title()))
		for _, t := range groups[c] {
			line := fmt.Sprintf("  [%s] %s  %s  %s", shortID(t.ID), t.Title, styles.RenderPriority(t.Priority), styles.SubtitleStyle.Render(t.Category))
			if t.DueDate != "" {
				line += styles.SubtitleStyle.Render("  due " + t.DueDate)
			}
			fmt.Println(line)
		}
	}

	return nil
}

func parseListFlags(cmd *cobra.Command) (board.Filter, models.Column, board.SortKey, error) {
	var filter board.Filter
	filter.Query, _ = cmd.Flags().GetString("query")
	filter.Category, _ = cmd.Flags().GetString("category")

	if raw, _ := cmd.Flags().GetString("priority"); raw != "" {
		priority, err := models.ParsePriority(raw)
		if err != nil {
			return filter, "", "", err
		}
		filter.Priority = priority
	}

	var column models.Column
	if raw, _ := cmd.Flags().GetString("column"); raw != "" {
		c, err := models.ParseColumn(raw)
		if err != nil {
			return filter, "", "", err
		}
		column = c
	}

	rawSort, _ := cmd.Flags().GetString("sort")
	sortKey, err := board.ParseSortKey(rawSort)
	if err != nil {
		return filter, "", "", err
	}

	return filter, column, sortKey, nil
}
