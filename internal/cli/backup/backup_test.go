package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
	testcli "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestExportToFile(t *testing.T) {
	app := testcli.SetupCLITest(t)
	testutil.CreateTestTask(t, app.Store, "Backed up", models.ColumnTodo)
	path := filepath.Join(t.TempDir(), "out.json")

	output, err := testcli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Exported to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := app.Store.Export()
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(data))
}

func TestExportToStdout(t *testing.T) {
	app := testcli.SetupCLITest(t)

	output, err := testcli.ExecuteCLICommand(t, app, ExportCmd(), []string{"-o", "-"})
	require.NoError(t, err)

	doc, err := board.Decode([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDocument(), doc)
	assert.True(t, strings.HasSuffix(output, "}\n"))
}

func TestExportDefaultFileName(t *testing.T) {
	cmd := ExportCmd()
	assert.Equal(t, "kanban-backup.json", cmd.Flag("output").DefValue)
}

func TestImportRoundTrip(t *testing.T) {
	source := testcli.SetupCLITest(t)
	testutil.CreateTestTask(t, source.Store, "Travels", models.ColumnDone)
	path := filepath.Join(t.TempDir(), "kanban-backup.json")
	_, err := testcli.ExecuteCLICommand(t, source, ExportCmd(), []string{"--output", path, "--quiet"})
	require.NoError(t, err)

	target := testcli.SetupCLITest(t)
	require.NoError(t, target.Store.CreateBoard(t.Context(), "Scratch"))

	output, err := testcli.ExecuteCLICommand(t, target, ImportCmd(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "✓ Import successful\n", output)
	assert.Equal(t, source.Store.Document(), target.Store.Document())
}

func TestImportFromStdin(t *testing.T) {
	app := testcli.SetupCLITest(t)
	cmd := ImportCmd()
	cmd.SetIn(strings.NewReader(`{"boards":{"Piped":[]},"currentBoard":"Piped"}`))

	output, err := testcli.ExecuteCLICommand(t, app, cmd, []string{"-", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "Piped", result["currentBoard"])
}

func TestImportInvalidFile(t *testing.T) {
	app := testcli.SetupCLITest(t)
	testutil.CreateTestTask(t, app.Store, "Survivor", models.ColumnTodo)
	before := app.Store.Document()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"boards":{}}`), 0o644))

	output, err := testcli.ExecuteCLICommand(t, app, ImportCmd(), []string{path, "--json"})
	require.Error(t, err)
	assert.ErrorIs(t, err, board.ErrInvalidFormat)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))

	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "INVALID_FORMAT", errData["code"])
	assert.True(t, strings.HasPrefix(errData["message"].(string), "Import failed: "))
	assert.Equal(t, before, app.Store.Document())
}

func TestImportMissingFile(t *testing.T) {
	app := testcli.SetupCLITest(t)

	_, err := testcli.ExecuteCLICommand(t, app, ImportCmd(), []string{filepath.Join(t.TempDir(), "nope.json"), "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneral, cli.ExitCode(err))
}
