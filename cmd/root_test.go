package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestRootHasCommands(t *testing.T) {
	root, closeApp := NewRootCmd()
	t.Cleanup(func() { _ = closeApp() })

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"task", "board", "export", "import", "tui"} {
		assert.True(t, names[want], "missing command %q", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("ephemeral"))
}

func TestRootUsesInjectedApp(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	root, closeApp := NewRootCmd()

	output, err := clitest.ExecuteCLICommand(t, testApp, root, []string{"task", "create", "--title", "From root", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	require.Len(t, testApp.Store.GetTasks(), 1)
	assert.Equal(t, "From root", testApp.Store.GetTasks()[0].Title)

	// The injected app belongs to the caller
	require.NoError(t, closeApp())
	assert.NotPanics(t, func() { testApp.Store.GetTasks() })
}

// TestEphemeralRun opens a fresh in-memory app from the default configuration.
func TestEphemeralRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("KANBAN_STORAGE", "")
	t.Setenv("KANBAN_LOG_LEVEL", "")

	prevLogger := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		log.SetOutput(os.Stderr)
	})

	root, closeApp := NewRootCmd()
	t.Cleanup(func() { _ = closeApp() })

	testutil.SetupCobraCommand(root, []string{"board", "list", "--json", "--ephemeral"})
	var execErr error
	output := testutil.CaptureOutput(t, func() {
		execErr = root.ExecuteContext(context.Background())
	})
	require.NoError(t, execErr)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "Default", result["currentBoard"])
	boardList, ok := result["boards"].([]any)
	require.True(t, ok)
	require.Len(t, boardList, 1)
	assert.EqualValues(t, 3, boardList[0].(map[string]any)["tasks"], "first run seeds the example tasks")

	_, err := os.Stat(filepath.Join(home, ".kanban", "kanban.db"))
	assert.True(t, os.IsNotExist(err), "ephemeral run must not create the database")

	_, err = os.Stat(filepath.Join(home, ".kanban", "logs", "kanban.log"))
	assert.NoError(t, err, "log file should be created")
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed"), 0o644))

	root, closeApp := NewRootCmd()
	t.Cleanup(func() { _ = closeApp() })

	testutil.SetupCobraCommand(root, []string{"board", "list", "--config", path})
	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Equal(t, cli.ExitGeneral, cli.ExitCode(err))
}
