package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// AddOutputFlags adds the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// ReadDescription returns value, or stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ApplyTaskFlags overrides fields with every task flag the user set.
// Unset flags keep the values already in fields.
func ApplyTaskFlags(cmd *cobra.Command, fields models.TaskFields) (models.TaskFields, error) {
	flags := cmd.Flags()

	if flags.Changed("title") {
		fields.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		description, err := ReadDescription(raw, cmd.InOrStdin())
		if err != nil {
			return fields, err
		}
		fields.Description = description
	}
	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		priority, err := models.ParsePriority(raw)
		if err != nil {
			return fields, err
		}
		fields.Priority = priority
	}
	if flags.Changed("category") {
		fields.Category, _ = flags.GetString("category")
	}
	if flags.Changed("due") {
		fields.DueDate, _ = flags.GetString("due")
	}
	if flags.Changed("column") {
		raw, _ := flags.GetString("column")
		column, err := models.ParseColumn(raw)
		if err != nil {
			return fields, err
		}
		fields.Column = column
	}
	return fields, nil
}

// AddTaskFlags adds the task field flags shared by create and update
func AddTaskFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("priority", "", "Priority: Low, Medium, High (default Medium)")
	cmd.Flags().String("category", "", "Category (default General)")
	cmd.Flags().String("due", "", "Due date, YYYY-MM-DD")
	cmd.Flags().String("column", "", "Column: todo, inprogress, done (default todo)")
}
