package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolDraft/internal/engine"
	"github.com/piwi3910/ToolDraft/internal/export"
	"github.com/piwi3910/ToolDraft/internal/logger"
	"github.com/piwi3910/ToolDraft/internal/model"
)

// ─── Tool Catalog Dialog ───────────────────────────────────

func (a *App) showCatalogDialog() {
	rows := container.NewVBox()
	var d dialog.Dialog
	var refresh func()

	refresh = func() {
		rows.RemoveAll()

		if len(a.catalog.Entries) == 0 {
			rows.Add(widget.NewLabel("The catalog is empty. Use 'Add Current Tool' or import a catalog file."))
			return
		}

		bold := fyne.TextStyle{Bold: true}
		rows.Add(container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Stock code", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("l1 (mm)", fyne.TextAlignLeading, bold),
			layout.NewSpacer(),
			layout.NewSpacer(),
		))
		rows.Add(widget.NewSeparator())

		for _, e := range a.catalog.Entries {
			e := e
			rows.Add(container.NewGridWithColumns(5,
				widget.NewLabel(e.Name),
				widget.NewLabel(model.StockCode(e.Profile)),
				widget.NewLabel(model.FormatMM(e.Profile.L1)),
				newIconButtonWithTooltip(theme.DocumentIcon(), "Load into the form", func() {
					cur, ok := a.catalog.Find(e.ID)
					if !ok {
						refresh()
						return
					}
					a.setProfile(cur.Profile)
					if d != nil {
						d.Hide()
					}
				}),
				newIconButtonWithTooltip(theme.DeleteIcon(), "Remove from catalog", func() {
					a.catalog.Remove(e.ID)
					refresh()
				}),
			))
		}
	}
	refresh()

	toolbar := container.NewHBox(
		widget.NewButtonWithIcon("Add Current Tool", theme.ContentAddIcon(), func() {
			a.addCurrentToCatalog()
			refresh()
		}),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Print Labels...", theme.DocumentPrintIcon(), a.exportCatalogLabels),
	)

	d = dialog.NewCustom("Tool Catalog", "Close", container.NewBorder(toolbar, nil, nil, nil, container.NewVScroll(rows)), a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

// addCurrentToCatalog keeps the form's tool as a preset for this session.
func (a *App) addCurrentToCatalog() {
	if err := model.Validate(a.profile); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.catalog.Add("", a.profile)
}

// catalogDrawings renders every preset, skipping entries whose lengths do
// not nest.
func catalogDrawings(c model.Catalog) []model.Drawing {
	var drawings []model.Drawing
	for _, e := range c.Entries {
		d, err := engine.Generate(e.Profile)
		if err != nil {
			logger.Warnf("catalog tool %q skipped: %v", e.Name, err)
			continue
		}
		drawings = append(drawings, d)
	}
	return drawings
}

func (a *App) exportCatalogLabels() {
	drawings := catalogDrawings(a.catalog)
	if len(drawings) == 0 {
		dialog.ShowInformation("Nothing to print", "The catalog has no valid tools.", a.window)
		return
	}
	a.saveFileDialog("tool-labels.pdf", func(path string) error {
		return export.ExportLabels(path, drawings)
	})
}
