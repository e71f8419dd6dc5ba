package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/miguelartazos/wnba-revenue-viz/cmd/wnbaviewer/uihelpers"
	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
	"github.com/miguelartazos/wnba-revenue-viz/src/geometry"
	"github.com/miguelartazos/wnba-revenue-viz/src/render"
)

const defaultAssetPath = "assets/original_chart.png"

type uiState struct {
	app       fyne.App
	window    fyne.Window
	assetPath string

	rows []dataset.DataRow

	// view options (rebuilt into a geometry.ViewOptions on each render)
	minYear, maxYear int
	showRevenue      bool
	showEqualShare   bool
	showActual       bool
	percentMode      bool

	// widgets
	table          *widget.Table
	chartImgCanvas *canvas.Image
	overlay        *hoverOverlay
	legendBox      *fyne.Container
}

func filteredRows(state *uiState) []dataset.DataRow {
	if state == nil {
		return nil
	}
	return dataset.FilterYears(state.rows, state.minYear, state.maxYear)
}

func currentOptions(state *uiState) geometry.ViewOptions {
	return geometry.ViewOptions{
		MinYear:        state.minYear,
		MaxYear:        state.maxYear,
		ShowRevenue:    state.showRevenue,
		ShowEqualShare: state.showEqualShare,
		ShowActual:     state.showActual,
		PercentMode:    state.percentMode,
	}
}

// chartSize derives the interactive chart raster size from the window width
// so the chart scales with the viewer.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 1000, 620
	}
	sz := state.window.Canvas().Size()
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.72) - 12)
}

// redrawChart runs the full pipeline: options -> geometry -> raster ->
// canvas swap. It is invoked synchronously on every control change; the
// dataset is seven rows, so a complete rebuild is cheaper than any caching.
func redrawChart(state *uiState) {
	cw, ch := chartSize(state)
	desc := geometry.Build(state.rows, currentOptions(state))
	img := render.Chart(desc, render.Config{Width: cw, Height: ch})
	if state.chartImgCanvas != nil {
		state.chartImgCanvas.Image = img
		state.chartImgCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
		state.chartImgCanvas.Refresh()
	}
	if state.overlay != nil {
		state.overlay.Refresh()
	}
	rebuildLegend(state)
	if state.table != nil {
		state.table.Refresh()
	}
}

// rebuildLegend refreshes the swatch row under the interactive chart to
// show only the visible series (revenue is dropped in percent mode, like
// its bars).
func rebuildLegend(state *uiState) {
	if state.legendBox == nil {
		return
	}
	state.legendBox.Objects = nil
	add := func(s geometry.Series) {
		col := render.HexColor(s.Color())
		sw := canvas.NewRectangle(col)
		sw.SetMinSize(fyne.NewSize(16, 10))
		state.legendBox.Add(container.NewHBox(sw, widget.NewLabel(s.String())))
	}
	if state.showRevenue && !state.percentMode {
		add(geometry.SeriesRevenue)
	}
	if state.showEqualShare {
		add(geometry.SeriesEqualShare)
	}
	if state.showActual {
		add(geometry.SeriesActual)
	}
	state.legendBox.Refresh()
}

func main() {
	var assetFlag string
	var screenshotsDir string
	var logLevel string
	flag.StringVar(&assetFlag, "asset", defaultAssetPath, "Path to the original reference chart image")
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render charts headlessly into this directory and exit")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	dataset.SetLogLevel(logLevel)

	rows := dataset.Sample()
	if err := dataset.Validate(rows); err != nil {
		dataset.Errorf("dataset invalid: %v", err)
		os.Exit(1)
	}

	if screenshotsDir != "" {
		if err := RunScreenshotsMode(screenshotsDir, rows); err != nil {
			dataset.Errorf("screenshots: %v", err)
			os.Exit(1)
		}
		return
	}

	minYear, maxYear, _ := dataset.YearBounds(rows)

	a := app.NewWithID("com.wnbaviz.viewer")
	w := a.NewWindow("WNBA Revenue Viewer")
	w.Resize(fyne.NewSize(1250, 850))

	state := &uiState{
		app:            a,
		window:         w,
		assetPath:      assetFlag,
		rows:           rows,
		minYear:        minYear,
		maxYear:        maxYear,
		showRevenue:    true,
		showEqualShare: true,
		showActual:     true,
	}

	// year options for the range selectors
	yearOpts := make([]string, 0, len(rows))
	for _, r := range rows {
		yearOpts = append(yearOpts, fmt.Sprintf("%d", r.Year))
	}
	fromSelect := widget.NewSelect(yearOpts, nil)
	toSelect := widget.NewSelect(yearOpts, nil)
	fromSelect.Selected = fmt.Sprintf("%d", state.minYear)
	toSelect.Selected = fmt.Sprintf("%d", state.maxYear)

	// series toggles and mode switch (callbacks wired after canvases exist)
	revenueChk := widget.NewCheck("WNBA Revenue", nil)
	shareChk := widget.NewCheck("50% Share (NBA-equivalent)", nil)
	actualChk := widget.NewCheck("Actual Player Salary", nil)
	pctChk := widget.NewCheck("Show as % of Revenue", nil)

	// data table with the derived share column
	state.table = widget.NewTable(
		func() (int, int) {
			n := len(filteredRows(state)) + 1
			if n < 1 {
				n = 1
			}
			return n, 5
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				switch id.Col {
				case 0:
					lbl.SetText("Year")
				case 1:
					lbl.SetText("Revenue")
				case 2:
					lbl.SetText("50% Share")
				case 3:
					lbl.SetText("Actual Salary")
				case 4:
					lbl.SetText("Share of Revenue")
				}
				return
			}
			rs := filteredRows(state)
			rix := id.Row - 1
			if rix < 0 || rix >= len(rs) {
				lbl.SetText("")
				return
			}
			r := rs[rix]
			switch id.Col {
			case 0:
				lbl.SetText(fmt.Sprintf("%d", r.Year))
			case 1:
				lbl.SetText(uihelpers.FormatMoney(r.Revenue))
			case 2:
				lbl.SetText(uihelpers.FormatMoney(r.EqualShare))
			case 3:
				lbl.SetText(uihelpers.FormatMoney(r.Actual))
			case 4:
				lbl.SetText(uihelpers.FormatPercent(dataset.SharePercent(r)))
			}
		},
	)
	state.table.SetColumnWidth(0, 80)
	state.table.SetColumnWidth(1, 110)
	state.table.SetColumnWidth(2, 110)
	state.table.SetColumnWidth(3, 130)
	state.table.SetColumnWidth(4, 150)

	// interactive chart canvas + hover overlay
	state.chartImgCanvas = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	state.chartImgCanvas.FillMode = canvas.ImageFillContain
	state.chartImgCanvas.SetMinSize(fyne.NewSize(900, 520))
	state.overlay = newHoverOverlay(state)
	state.legendBox = container.NewHBox()

	controls := container.NewVBox(
		widget.NewLabel("Year Range"),
		container.NewHBox(widget.NewLabel("From:"), fromSelect, widget.NewLabel("To:"), toSelect),
		widget.NewSeparator(),
		widget.NewLabel("Show/Hide Series"),
		revenueChk, shareChk, actualChk,
		widget.NewSeparator(),
		pctChk,
		widget.NewSeparator(),
		widget.NewLabel("About This Chart"),
		widget.NewRichTextFromMarkdown(
			"The W.N.B.A. has grown quickly, with revenue rising from ~$95M in 2019 "+
				"to ~$295M in 2025.\n\nPlayers receive only **~7-10%** of league revenue, "+
				"compared to N.B.A. players who receive ~50%. The light blue bars show what "+
				"W.N.B.A. players *would* earn under the same split."),
	)

	interactiveTab := container.NewBorder(nil, state.legendBox, controls, nil,
		container.NewStack(state.chartImgCanvas, state.overlay))

	// static recreation beside the reference image
	staticImg := render.StaticChart(rows, 1000, 750)
	staticCanvas := canvas.NewImageFromImage(staticImg)
	staticCanvas.FillMode = canvas.ImageFillContain
	staticCanvas.SetMinSize(fyne.NewSize(560, 420))
	recreationTab := container.NewHSplit(
		container.NewBorder(widget.NewLabel("Original Chart"), nil, nil, nil, referenceImage(state.assetPath)),
		container.NewBorder(widget.NewLabel("Recreation"), nil, nil, nil, staticCanvas),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Recreation", recreationTab),
		container.NewTabItem("Interactive", interactiveTab),
		container.NewTabItem("Data", state.table),
	)
	tabs.SetTabLocation(container.TabLocationTop)
	tabs.OnSelected = func(ti *container.TabItem) {
		state.app.Preferences().SetInt("selectedTabIndex", tabs.SelectedIndex())
	}
	w.SetContent(tabs)

	// Redraw the interactive chart when the window width changes so it
	// keeps using the available space.
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					if curW := int(c.Size().Width); curW != prevW {
						prevW = curW
						fyne.Do(func() { redrawChart(state) })
					}
				}
			}
		}()
	}

	// Wire callbacks now that every widget exists. Each change rebuilds
	// ViewOptions and re-renders in full; no caching of prior geometry.
	fromSelect.OnChanged = func(v string) {
		if y, err := strconv.Atoi(v); err == nil {
			state.minYear = clampYear(y, rows)
		}
		savePrefs(state)
		redrawChart(state)
	}
	toSelect.OnChanged = func(v string) {
		if y, err := strconv.Atoi(v); err == nil {
			state.maxYear = clampYear(y, rows)
		}
		savePrefs(state)
		redrawChart(state)
	}
	revenueChk.OnChanged = func(b bool) { state.showRevenue = b; savePrefs(state); redrawChart(state) }
	shareChk.OnChanged = func(b bool) { state.showEqualShare = b; savePrefs(state); redrawChart(state) }
	actualChk.OnChanged = func(b bool) { state.showActual = b; savePrefs(state); redrawChart(state) }
	pctChk.OnChanged = func(b bool) { state.percentMode = b; savePrefs(state); redrawChart(state) }

	buildMenus(state)
	loadPrefs(state, fromSelect, toSelect, tabs)
	revenueChk.SetChecked(state.showRevenue)
	shareChk.SetChecked(state.showEqualShare)
	actualChk.SetChecked(state.showActual)
	pctChk.SetChecked(state.percentMode)

	redrawChart(state)
	w.ShowAndRun()
}

func clampYear(y int, rows []dataset.DataRow) int {
	min, max, ok := dataset.YearBounds(rows)
	if !ok {
		return y
	}
	if y < min {
		return min
	}
	if y > max {
		return max
	}
	return y
}

// referenceImage loads the original chart asset, or a labeled placeholder
// when the file is missing. The failure is not retried; the viewer stays
// usable without the asset.
func referenceImage(path string) fyne.CanvasObject {
	if _, err := os.Stat(path); err != nil {
		dataset.Warnf("reference image missing at %s: %v", path, err)
		ph := canvas.NewImageFromImage(render.Blank(560, 420))
		ph.FillMode = canvas.ImageFillContain
		msg := widget.NewLabel("Reference image not found:\n" + uihelpers.TruncatePath(path, 60))
		msg.Alignment = fyne.TextAlignCenter
		return container.NewStack(ph, container.NewCenter(msg))
	}
	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(560, 420))
	return img
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	exportInteractive := fyne.NewMenuItem("Export Interactive Chart…", func() {
		exportChartPNG(state, state.chartImgCanvas.Image, "interactive_chart.png")
	})
	exportStatic := fyne.NewMenuItem("Export Static Recreation…", func() {
		exportChartPNG(state, render.StaticChart(state.rows, 1000, 750), "static_recreation.png")
	})
	fileMenu := fyne.NewMenu("File",
		exportInteractive,
		exportStatic,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) {
			exportChartPNG(state, state.chartImgCanvas.Image, "interactive_chart.png")
		})
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
			exportChartPNG(state, state.chartImgCanvas.Image, "interactive_chart.png")
		})
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

func exportChartPNG(state *uiState, img image.Image, defaultName string) {
	if state == nil || state.window == nil || img == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := render.WritePNG(wc, img); err != nil {
			dataset.Errorf("export png: %v", err)
		}
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetInt("minYear", state.minYear)
	prefs.SetInt("maxYear", state.maxYear)
	prefs.SetBool("showRevenue", state.showRevenue)
	prefs.SetBool("showEqualShare", state.showEqualShare)
	prefs.SetBool("showActual", state.showActual)
	prefs.SetBool("percentMode", state.percentMode)
}

func loadPrefs(state *uiState, from, to *widget.Select, tabs *container.AppTabs) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	state.minYear = clampYear(prefs.IntWithFallback("minYear", state.minYear), state.rows)
	state.maxYear = clampYear(prefs.IntWithFallback("maxYear", state.maxYear), state.rows)
	state.showRevenue = prefs.BoolWithFallback("showRevenue", state.showRevenue)
	state.showEqualShare = prefs.BoolWithFallback("showEqualShare", state.showEqualShare)
	state.showActual = prefs.BoolWithFallback("showActual", state.showActual)
	state.percentMode = prefs.BoolWithFallback("percentMode", state.percentMode)
	if from != nil {
		from.Selected = fmt.Sprintf("%d", state.minYear)
	}
	if to != nil {
		to.Selected = fmt.Sprintf("%d", state.maxYear)
	}
	if tabs != nil {
		idx := prefs.IntWithFallback("selectedTabIndex", 0)
		if idx >= 0 && idx < len(tabs.Items) {
			tabs.SelectIndex(idx)
		}
	}
}
