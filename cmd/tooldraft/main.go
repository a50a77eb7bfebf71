// ToolDraft: End Mill Drawing Generator
//
// A cross-platform desktop application that turns end mill parameters
// into a dimensioned 2D side view with a stock code, and exports the
// drawing to SVG, PDF, DXF, PNG and XLSX.
//
// Build:
//   go build -o tooldraft ./cmd/tooldraft
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o tooldraft.exe ./cmd/tooldraft
//   GOOS=darwin  GOARCH=amd64 go build -o tooldraft-darwin ./cmd/tooldraft
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/ToolDraft/internal/logger"
	"github.com/piwi3910/ToolDraft/internal/model"
	"github.com/piwi3910/ToolDraft/internal/project"
	"github.com/piwi3910/ToolDraft/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		logger.Warnf("using default settings: %v", err)
		config = model.DefaultAppConfig()
	}
	if err := logger.SetLevel(config.LogLevel); err != nil {
		logger.Warnf("invalid log level %q: %v", config.LogLevel, err)
	}

	application := app.NewWithID("com.piwi3910.tooldraft")
	application.Settings().SetTheme(ui.NewToolDraftThemeWithVariant(ui.ThemeVariant(config.Theme)))

	window := application.NewWindow("ToolDraft: End Mill Drawing Generator")

	appUI := ui.NewApp(window, config, configPath)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()

	logger.Info("ToolDraft started")
	window.ShowAndRun()
}
