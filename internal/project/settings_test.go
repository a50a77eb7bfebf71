package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ToolDraft/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExportAndImportSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.Style.FontSize = 12
	cfg.PNGDPI = 300

	require.NoError(t, ExportSettings(path, cfg))

	loaded, err := ImportSettings(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExportSettingsCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "settings.json")

	require.NoError(t, ExportSettings(path, model.DefaultAppConfig()))
	assert.FileExists(t, path)
}

func TestImportSettingsMissingFile(t *testing.T) {
	_, err := ImportSettings(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestImportSettingsInvalidJSON(t *testing.T) {
	_, err := ImportSettings(writeFile(t, "bad.json", "{not json}"))
	assert.Error(t, err)
}

func TestImportSettingsRejectsForeignFile(t *testing.T) {
	_, err := ImportSettings(writeFile(t, "other.json", `{"config":{"theme":"dark"}}`))
	assert.True(t, errors.Is(err, errNotSettings), "got %v", err)
}

func TestImportSettingsRejectsNewerFormat(t *testing.T) {
	_, err := ImportSettings(writeFile(t, "future.json", `{"app":"tooldraft","format":99}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer")
}

func TestImportSettingsRepairsValues(t *testing.T) {
	path := writeFile(t, "settings.json", `{
		"app": "tooldraft",
		"format": 1,
		"config": {"theme": "", "png_dpi": -1, "style": {"line_width": 0}}
	}`)

	cfg, err := ImportSettings(path)
	require.NoError(t, err)

	def := model.DefaultAppConfig()
	assert.Equal(t, "system", cfg.Theme)
	assert.Equal(t, def.PNGDPI, cfg.PNGDPI)
	assert.Equal(t, def.Style.LineWidth, cfg.Style.LineWidth)
}
