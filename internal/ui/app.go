package ui

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ToolDraft/internal/engine"
	"github.com/piwi3910/ToolDraft/internal/export"
	"github.com/piwi3910/ToolDraft/internal/importer"
	"github.com/piwi3910/ToolDraft/internal/logger"
	"github.com/piwi3910/ToolDraft/internal/model"
	"github.com/piwi3910/ToolDraft/internal/project"
	"github.com/piwi3910/ToolDraft/internal/ui/widgets"
)

// Increment applied by the +/- buttons.
const (
	diameterStep = 0.1
	lengthStep   = 1.0
)

// App holds all application state and UI references.
type App struct {
	window     fyne.Window
	config     model.AppConfig
	configPath string
	catalog    model.Catalog

	profile model.ToolProfile
	drawing *model.Drawing

	// UI references for dynamic updates
	canvas        *widgets.DrawingCanvas
	errorLabel    *widget.Label
	stockLabel    *widget.Label
	summaryLabel  *widget.Label
	advisoryLabel *widget.Label
	fields        []*paramField
	flutesSlider  *widget.Slider
	helixSlider   *widget.Slider
	flutesValue   *widget.Label
	helixValue    *widget.Label
}

// paramField is a numeric entry bound to one profile field.
type paramField struct {
	label string
	value *float64
	step  float64
	entry *widget.Entry
}

func NewApp(window fyne.Window, config model.AppConfig, configPath string) *App {
	return &App{
		window:     window,
		config:     config,
		configPath: configPath,
		catalog:    model.DefaultCatalog(),
		profile:    model.DefaultToolProfile(),
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Tool", func() {
			a.setProfile(model.DefaultToolProfile())
		}),
		fyne.NewMenuItem("Import Tool Catalog...", func() {
			a.importCatalog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export SVG...", func() {
			a.exportDrawing(".svg", func(path string, d model.Drawing) error {
				return export.ExportSVG(path, d, a.config.Style)
			})
		}),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportDrawing(".pdf", func(path string, d model.Drawing) error {
				return export.ExportPDF(path, d, a.config.Style)
			})
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportDrawing(".dxf", export.ExportDXF)
		}),
		fyne.NewMenuItem("Export PNG...", func() {
			a.exportDrawing(".png", func(path string, d model.Drawing) error {
				return export.ExportPNG(path, d, a.config.Style, a.config.PNGDPI)
			})
		}),
		fyne.NewMenuItem("Export Dimension Table...", func() {
			a.exportDrawing(".xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	catalogMenu := fyne.NewMenu("Catalog",
		fyne.NewMenuItem("Tool Catalog...", func() {
			a.showCatalogDialog()
		}),
		fyne.NewMenuItem("Add Current Tool", func() {
			a.addCurrentToCatalog()
		}),
		fyne.NewMenuItem("Print Catalog Labels...", func() {
			a.exportCatalogLabels()
		}),
	)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Preferences...", func() {
			a.showPreferencesDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Settings...", func() {
			a.exportSettings()
		}),
		fyne.NewMenuItem("Import Settings...", func() {
			a.importSettings()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, catalogMenu, settingsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About ToolDraft",
		"ToolDraft: End Mill Drawing Generator\n\n"+
			"Generates dimensioned 2D side-view drawings of\n"+
			"corner radius end mills with stock codes.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.canvas = widgets.NewDrawingCanvas(a.config.Style)

	a.errorLabel = widget.NewLabel("")
	a.errorLabel.Importance = widget.DangerImportance
	a.errorLabel.Wrapping = fyne.TextWrapWord
	a.errorLabel.Hide()

	a.stockLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true, Monospace: true})
	a.summaryLabel = widget.NewLabel("")
	a.advisoryLabel = widget.NewLabel("")
	a.advisoryLabel.Importance = widget.WarningImportance
	a.advisoryLabel.Wrapping = fyne.TextWrapWord

	info := container.NewVBox(
		widget.NewLabelWithStyle("Stock code", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(a.stockLabel, newIconButtonWithTooltip(theme.ContentCopyIcon(), "Copy stock code", func() {
			fyne.CurrentApp().Clipboard().SetContent(a.stockLabel.Text)
		})),
		widget.NewSeparator(),
		a.summaryLabel,
		a.advisoryLabel,
	)

	drawingPanel := container.NewBorder(a.errorLabel, nil, nil, nil, a.canvas)
	right := container.NewBorder(nil, nil, nil, container.NewPadded(info), drawingPanel)

	split := container.NewHSplit(container.NewVScroll(a.buildParameterPanel()), right)
	split.Offset = 0.25

	a.regenerate()
	return split
}

// ─── Parameter Panel ───────────────────────────────────────

func (a *App) buildParameterPanel() fyne.CanvasObject {
	p := &a.profile
	a.fields = []*paramField{
		{label: "d1 cutting diameter (mm)", value: &p.D1, step: diameterStep},
		{label: "d2 shank diameter (mm)", value: &p.D2, step: diameterStep},
		{label: "d3 neck diameter (mm)", value: &p.D3, step: diameterStep},
		{label: "l1 overall length (mm)", value: &p.L1, step: lengthStep},
		{label: "l2 cutting length (mm)", value: &p.L2, step: lengthStep},
		{label: "l3 reach length (mm)", value: &p.L3, step: lengthStep},
		{label: "R corner radius (mm)", value: &p.R, step: diameterStep},
	}

	geometry := container.NewVBox()
	for _, f := range a.fields {
		geometry.Add(widget.NewLabel(f.label))
		geometry.Add(a.newStepper(f))
	}

	a.flutesValue = widget.NewLabel("")
	a.flutesSlider = widget.NewSlider(model.MinFlutes, model.MaxFlutes)
	a.flutesSlider.Step = 1
	a.flutesSlider.OnChanged = func(v float64) {
		a.profile.Flutes = int(v)
		a.flutesValue.SetText(flutesLabel(a.profile.Flutes))
		a.regenerate()
	}

	a.helixValue = widget.NewLabel("")
	a.helixSlider = widget.NewSlider(model.MinHelixAngle, model.MaxHelixAngle)
	a.helixSlider.Step = model.HelixStep
	a.helixSlider.OnChanged = func(v float64) {
		a.profile.HelixAngle = v
		a.helixValue.SetText(helixLabel(v))
		a.regenerate()
	}

	flutes := container.NewVBox(
		container.NewHBox(widget.NewLabel("Z flutes"), layout.NewSpacer(), a.flutesValue),
		a.flutesSlider,
		container.NewHBox(widget.NewLabel("α helix angle"), layout.NewSpacer(), a.helixValue),
		a.helixSlider,
	)

	a.syncControls()

	return container.NewVBox(
		widget.NewCard("Geometry", "", geometry),
		widget.NewCard("Flutes", "", flutes),
	)
}

// parseStepperValue reads a length typed with either decimal separator.
// Infinities and NaN are rejected along with malformed text.
func parseStepperValue(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// newStepper returns an entry flanked by -/+ buttons. Unparseable text is
// ignored until it becomes a number again.
func (a *App) newStepper(f *paramField) fyne.CanvasObject {
	f.entry = widget.NewEntry()
	f.entry.OnChanged = func(text string) {
		v, ok := parseStepperValue(text)
		if !ok {
			return
		}
		*f.value = v
		a.regenerate()
	}

	stepBy := func(delta float64) func() {
		return func() {
			v := roundStep(*f.value+delta, f.step)
			f.entry.SetText(model.FormatMM(v))
		}
	}
	minus := newIconButtonWithTooltip(theme.ContentRemoveIcon(),
		fmt.Sprintf("Decrease by %s", model.FormatMM(f.step)), stepBy(-f.step))
	plus := newIconButtonWithTooltip(theme.ContentAddIcon(),
		fmt.Sprintf("Increase by %s", model.FormatMM(f.step)), stepBy(f.step))

	return container.NewBorder(nil, nil, minus, plus, f.entry)
}

// syncControls pushes the profile into the widgets without feedback loops.
func (a *App) syncControls() {
	for _, f := range a.fields {
		if f.entry == nil {
			continue
		}
		onChanged := f.entry.OnChanged
		f.entry.OnChanged = nil
		f.entry.SetText(model.FormatMM(*f.value))
		f.entry.OnChanged = onChanged
	}
	if a.flutesSlider != nil {
		onChanged := a.flutesSlider.OnChanged
		a.flutesSlider.OnChanged = nil
		a.flutesSlider.SetValue(float64(a.profile.Flutes))
		a.flutesSlider.OnChanged = onChanged
		a.flutesValue.SetText(flutesLabel(a.profile.Flutes))
		if !flutesOnSlider(a.profile.Flutes) {
			logger.Warnf("flute count %d shown clamped on the slider", a.profile.Flutes)
		}
	}
	if a.helixSlider != nil {
		onChanged := a.helixSlider.OnChanged
		a.helixSlider.OnChanged = nil
		a.helixSlider.SetValue(a.profile.HelixAngle)
		a.helixSlider.OnChanged = onChanged
		a.helixValue.SetText(helixLabel(a.profile.HelixAngle))
		if !helixOnSlider(a.profile.HelixAngle) {
			logger.Warnf("helix angle %s° shown clamped on the slider", model.FormatAngle(a.profile.HelixAngle))
		}
	}
}

func flutesOnSlider(n int) bool {
	return n >= model.MinFlutes && n <= model.MaxFlutes
}

func helixOnSlider(deg float64) bool {
	return deg >= model.MinHelixAngle && deg <= model.MaxHelixAngle
}

// flutesLabel and helixLabel print the real value, marking ones the slider
// can only show clamped.
func flutesLabel(n int) string {
	s := strconv.Itoa(n)
	if !flutesOnSlider(n) {
		s += " (off scale)"
	}
	return s
}

func helixLabel(deg float64) string {
	s := model.FormatAngle(deg) + "°"
	if !helixOnSlider(deg) {
		s += " (off scale)"
	}
	return s
}

// setProfile replaces every parameter at once and redraws.
func (a *App) setProfile(p model.ToolProfile) {
	a.profile = p
	a.syncControls()
	a.regenerate()
}

// ─── Drawing ───────────────────────────────────────────────

// regenerate re-validates and redraws. Invalid lengths clear the drawing
// and show the error instead.
func (a *App) regenerate() {
	if a.canvas == nil {
		return
	}

	d, err := engine.Generate(a.profile)
	if err != nil {
		logger.Debugf("drawing rejected: %v", err)
		a.drawing = nil
		a.canvas.SetDrawing(nil)
		a.errorLabel.SetText(fmt.Sprintf("Error: %v", err))
		a.errorLabel.Show()
		a.stockLabel.SetText("")
		a.summaryLabel.SetText("")
		a.advisoryLabel.SetText("")
		return
	}

	a.drawing = &d
	a.errorLabel.Hide()
	a.canvas.SetDrawing(&d)
	a.stockLabel.SetText(d.StockCode)
	a.summaryLabel.SetText(strings.Join(d.Summary, "\n"))

	if adv := model.Advisories(a.profile); len(adv) > 0 {
		a.advisoryLabel.SetText("Check: " + strings.Join(adv, "; "))
	} else {
		a.advisoryLabel.SetText("")
	}
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportDrawing(ext string, write func(path string, d model.Drawing) error) {
	if a.drawing == nil {
		dialog.ShowInformation("Nothing to export", "Fix the tool lengths first.", a.window)
		return
	}
	d := *a.drawing
	a.saveFileDialog(d.StockCode+ext, func(path string) error {
		if err := write(path, d); err != nil {
			return err
		}
		logger.Infof("exported %s to %s", d.StockCode, path)
		return nil
	})
}

// saveFileDialog asks for a destination starting in the last export folder
// and remembers the folder on success.
func (a *App) saveFileDialog(defaultName string, save func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := save(path); err != nil {
			logger.Errorf("save %s: %v", path, err)
			dialog.ShowError(err, a.window)
			return
		}
		a.config.ExportDir = filepath.Dir(path)
		a.saveConfig()
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	if a.config.ExportDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(a.config.ExportDir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importCatalog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.Import(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	for _, w := range result.Warnings {
		logger.Warnf("import: %s", w)
	}

	if len(result.Tools) == 0 {
		return
	}
	for _, t := range result.Tools {
		a.catalog.Add(t.Name, t.Profile)
	}
	a.setProfile(result.Tools[0].Profile)

	msg := fmt.Sprintf("Added %d tools to the catalog.", len(result.Tools))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

// ─── Persistence ───────────────────────────────────────────

func (a *App) saveConfig() {
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		logger.Errorf("save config: %v", err)
	}
}

func (a *App) exportSettings() {
	a.saveFileDialog("tooldraft-settings.json", func(path string) error {
		return project.ExportSettings(path, a.config)
	})
}

func (a *App) importSettings() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		cfg, err := project.ImportSettings(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.applyConfig(cfg)
		a.saveConfig()
	}, a.window)
}
