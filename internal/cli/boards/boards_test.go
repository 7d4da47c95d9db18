package boards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
	testcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestBoardLifecycle(t *testing.T) {
	app := testcli.SetupCLITest(t)

	output, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Work"})
	require.NoError(t, err)
	assert.Contains(t, output, "Board 'Work' created")
	assert.Equal(t, "Work", app.Store.CurrentBoard())

	testutil.CreateTestTask(t, app.Store, "on work", models.ColumnTodo)

	output, err = testcli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "Work", result["currentBoard"])
	boards := result["boards"].([]any)
	require.Len(t, boards, 2)
	work := boards[1].(map[string]any)
	assert.Equal(t, "Work", work["name"])
	assert.Equal(t, float64(1), work["tasks"])
	assert.Equal(t, true, work["current"])

	_, err = testcli.ExecuteCLICommand(t, app, SwitchCmd(), []string{"Default", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Default", app.Store.CurrentBoard())

	output, err = testcli.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "* Default")
	assert.Contains(t, output, "  Work (1 tasks)")
}

func TestCreateDuplicateBoard(t *testing.T) {
	app := testcli.SetupCLITest(t)
	_, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Work"})
	require.NoError(t, err)
	_, err = testcli.ExecuteCLICommand(t, app, SwitchCmd(), []string{"Default"})
	require.NoError(t, err)
	before := app.Store.Document()

	output, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Work", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))
	assert.Equal(t, "BOARD_EXISTS", testutil.ParseJSON(t, output)["error"].(map[string]any)["code"])
	assert.Equal(t, before, app.Store.Document())
}

func TestSwitchUnknownBoard(t *testing.T) {
	app := testcli.SetupCLITest(t)

	_, err := testcli.ExecuteCLICommand(t, app, SwitchCmd(), []string{"Nowhere", "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Equal(t, models.DefaultBoardName, app.Store.CurrentBoard())
}

func TestCreateBlankBoard(t *testing.T) {
	app := testcli.SetupCLITest(t)

	_, err := testcli.ExecuteCLICommand(t, app, CreateCmd(), []string{" ", "--json"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}
