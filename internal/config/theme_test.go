package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeFileLoading(t *testing.T) {
	tempDir := isolateEnv(t)

	themeContent := []byte(`theme:
  accent: "#FF0000"
  high: "#00FF00"
`)
	themePath := filepath.Join(tempDir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, themeContent, 0o644))
	t.Setenv("KANBAN_THEME_FILE", themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.High)
	// Unset colors come from the default preset
	assert.Equal(t, DefaultColorScheme().Low, cfg.ColorScheme.Low)
}

func TestColorSchemePresets(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	assert.Equal(t, "#123456", scheme.Accent)
	assert.Equal(t, MonochromeColorScheme().Title, scheme.Title)

	unknown := ColorScheme{Preset: "neon"}
	unknown.ApplyDefaults()
	assert.Equal(t, DefaultColorScheme().Accent, unknown.Accent)
}
