package board

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
)

// exampleTasks are shown to first-time users, one per column, oldest first
func exampleTasks(now time.Time, newID func() string) []models.Task {
	ms := now.UnixMilli()
	return []models.Task{
		{
			ID:          newID(),
			Column:      models.ColumnTodo,
			Title:       "Set project repo",
			Description: "Create GitHub repo and push starter files",
			Priority:    models.PriorityHigh,
			Category:    "Docs",
			CreatedAt:   ms - 100000,
		},
		{
			ID:          newID(),
			Column:      models.ColumnInProgress,
			Title:       "Implement drag & drop",
			Description: "Move cards between columns with H and L",
			Priority:    models.PriorityMedium,
			Category:    "Feature",
			CreatedAt:   ms - 80000,
		},
		{
			ID:          newID(),
			Column:      models.ColumnDone,
			Title:       "Design UI",
			Description: "Three columns, colored priority badges",
			Priority:    models.PriorityLow,
			Category:    "Design",
			CreatedAt:   ms - 60000,
		},
	}
}
