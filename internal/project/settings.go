package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// SettingsFormat is bumped when the export layout changes incompatibly.
const SettingsFormat = 1

const settingsApp = "tooldraft"

var errNotSettings = errors.New("not a ToolDraft settings file")

// SettingsExport wraps preferences for moving them between machines.
type SettingsExport struct {
	App       string          `json:"app"`
	Format    int             `json:"format"`
	CreatedAt time.Time       `json:"created_at"`
	Config    model.AppConfig `json:"config"`
}

// ExportSettings writes config to path in a self-describing envelope.
func ExportSettings(path string, config model.AppConfig) error {
	return writeJSON(path, SettingsExport{
		App:       settingsApp,
		Format:    SettingsFormat,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Config:    config,
	})
}

// ImportSettings reads a file written by ExportSettings. Applying the
// result is up to the caller.
func ImportSettings(path string) (model.AppConfig, error) {
	export := SettingsExport{Config: model.DefaultAppConfig()}
	if err := readJSON(path, &export); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to read settings: %w", err)
	}
	if export.App != settingsApp {
		return model.AppConfig{}, errNotSettings
	}
	if export.Format > SettingsFormat {
		return model.AppConfig{}, fmt.Errorf("settings format %d is newer than supported format %d", export.Format, SettingsFormat)
	}
	fillConfigDefaults(&export.Config)
	return export.Config, nil
}
