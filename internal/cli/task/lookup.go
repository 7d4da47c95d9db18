package task

import (
	"fmt"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
)

// findTask resolves an id or unique prefix to a task on the current board
func findTask(cliInstance *cli.CLI, idOrPrefix string) (models.Task, error) {
	store := cliInstance.Store()
	id, err := store.ResolveTaskID(idOrPrefix)
	if err != nil {
		return models.Task{}, err
	}
	for _, t := range store.GetTasks() {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("%w: %s", board.ErrTaskNotFound, idOrPrefix)
}
