package project

import (
	"os"
	"path/filepath"

	"github.com/piwi3910/ToolDraft/internal/model"
)

// DefaultConfigDir is ~/.tooldraft, or ./.tooldraft without a home directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tooldraft")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes the preferences to path.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads preferences from path. A missing file yields
// DefaultAppConfig, and keys absent from the file keep their defaults.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	if err := readJSON(path, &config); err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	fillConfigDefaults(&config)
	return config, nil
}

// fillConfigDefaults repairs values saved empty or non-positive, which no
// renderer can use.
func fillConfigDefaults(c *model.AppConfig) {
	defaults := model.DefaultAppConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.PNGDPI <= 0 {
		c.PNGDPI = defaults.PNGDPI
	}

	s, ds := &c.Style, defaults.Style
	for _, w := range []struct{ v, def *float64 }{
		{&s.LineWidth, &ds.LineWidth},
		{&s.FluteWidth, &ds.FluteWidth},
		{&s.ExtensionWidth, &ds.ExtensionWidth},
		{&s.FontSize, &ds.FontSize},
	} {
		if *w.v <= 0 {
			*w.v = *w.def
		}
	}
}
