package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolDraft/internal/logger"
	"github.com/piwi3910/ToolDraft/internal/model"
)

// showPreferencesDialog edits the theme, log level and drawing style.
func (a *App) showPreferencesDialog() {
	cfg := a.config

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(strconv.FormatFloat(*val, 'f', -1, 64))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil && v > 0 {
				*val = v
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(s string) {
		cfg.Theme = s
	})
	themeSelect.SetSelected(cfg.Theme)

	levelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(s string) {
		cfg.LogLevel = s
	})
	levelSelect.SetSelected(cfg.LogLevel)

	appearance := widget.NewCard("Application", "", container.NewGridWithColumns(2,
		widget.NewLabel("Theme"), themeSelect,
		widget.NewLabel("Log level"), levelSelect,
	))

	style := widget.NewCard("Drawing", "Stroke widths in points", container.NewGridWithColumns(2,
		widget.NewLabel("Outline width"), floatEntry(&cfg.Style.LineWidth),
		widget.NewLabel("Flute width"), floatEntry(&cfg.Style.FluteWidth),
		widget.NewLabel("Extension line width"), floatEntry(&cfg.Style.ExtensionWidth),
		widget.NewLabel("Label size"), floatEntry(&cfg.Style.FontSize),
	))

	dpiSelect := widget.NewSelect([]string{"96", "150", "300", "600"}, func(v string) {
		if dpi, err := strconv.Atoi(v); err == nil {
			cfg.PNGDPI = dpi
		}
	})
	dpiSelect.SetSelected(strconv.Itoa(cfg.PNGDPI))

	exports := widget.NewCard("Export", "", container.NewGridWithColumns(2,
		widget.NewLabel("PNG resolution (dpi)"), dpiSelect,
	))

	d := dialog.NewCustomConfirm("Preferences", "Save", "Cancel",
		container.NewVBox(appearance, style, exports),
		func(ok bool) {
			if !ok {
				return
			}
			a.applyConfig(cfg)
			a.saveConfig()
		}, a.window)
	d.Resize(fyne.NewSize(450, 460))
	d.Show()
}

// applyConfig makes cfg current and pushes it to the logger, theme and
// preview.
func (a *App) applyConfig(cfg model.AppConfig) {
	a.config = cfg
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	fyne.CurrentApp().Settings().SetTheme(NewToolDraftThemeWithVariant(ThemeVariant(cfg.Theme)))
	if a.canvas != nil {
		a.canvas.SetStyle(cfg.Style)
	}
}
