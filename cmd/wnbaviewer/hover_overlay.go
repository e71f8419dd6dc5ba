package main

import (
	"image/color"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/miguelartazos/wnba-revenue-viz/cmd/wnbaviewer/uihelpers"
)

// hoverOverlay draws a vertical guide over the interactive chart and shows
// a tooltip with the nearest year's values. It sits stacked on top of the
// chart's canvas.Image and tracks mouse position.
type hoverOverlay struct {
	widget.BaseWidget
	state    *uiState
	enabled  bool
	mouse    fyne.Position
	hovering bool
}

func newHoverOverlay(state *uiState) *hoverOverlay {
	h := &hoverOverlay{state: state, enabled: true}
	h.ExtendBaseWidget(h)
	return h
}

func (h *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background to ensure a full hit-area for hover events
	bg := canvas.NewRectangle(color.RGBA{})
	lineV := canvas.NewLine(color.RGBA{R: 120, G: 120, B: 120, A: 200})
	lineV.StrokeWidth = 1.0
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.RGBA{R: 255, G: 255, B: 255, A: 235})
	labelBG.StrokeColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	labelBG.StrokeWidth = 1
	objs := []fyne.CanvasObject{bg, lineV, labelBG, label}
	return &hoverRenderer{h: h, bg: bg, lineV: lineV, labelBG: labelBG, label: label, objs: objs}
}

type hoverRenderer struct {
	h       *hoverOverlay
	bg      *canvas.Rectangle
	lineV   *canvas.Line
	labelBG *canvas.Rectangle
	label   *widget.RichText
	objs    []fyne.CanvasObject
}

func (r *hoverRenderer) Destroy() {}

func (r *hoverRenderer) hide() {
	r.lineV.Position1 = fyne.NewPos(-10, -10)
	r.lineV.Position2 = fyne.NewPos(-10, -10)
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
	r.label.Move(fyne.NewPos(-1000, -1000))
}

func (r *hoverRenderer) Layout(size fyne.Size) {
	if r.h == nil {
		return
	}
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	if !r.h.enabled || !r.h.hovering {
		r.hide()
		return
	}
	st := r.h.state
	rows := filteredRows(st)
	n := len(rows)
	if n == 0 {
		r.hide()
		return
	}
	var imgW, imgH float32
	if st.chartImgCanvas != nil && st.chartImgCanvas.Image != nil {
		b := st.chartImgCanvas.Image.Bounds()
		imgW, imgH = float32(b.Dx()), float32(b.Dy())
	}
	if imgW <= 0 || imgH <= 0 {
		imgW, imgH = size.Width, size.Height
	}
	drawX, drawY, drawW, drawH, _ := computeContainRect(imgW, imgH, size.Width, size.Height)
	x := r.h.mouse.X
	y := r.h.mouse.Y
	// Hide when the cursor is outside the drawn (contain-fit) image area.
	if x < drawX || x > drawX+drawW || y < drawY || y > drawY+drawH {
		r.hide()
		return
	}
	centers := xCentersSlotMode(n, imgW, imgH, size.Width, size.Height)
	idx := nearestIndex(centers, x)

	r.lineV.Position1 = fyne.NewPos(centers[idx], drawY)
	r.lineV.Position2 = fyne.NewPos(centers[idx], drawY+drawH)

	lines := uihelpers.HoverLines(rows[idx], currentOptions(st))
	r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: strings.Join(lines, "\n")}}
	r.label.Refresh()

	pad := float32(6)
	ts := r.label.MinSize()
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx, ty := x+10, y+10
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	r.labelBG.Resize(fyne.NewSize(bgW, bgH))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *hoverRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *hoverRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *hoverRenderer) Refresh() {
	r.Layout(r.h.Size())
	r.bg.Refresh()
	r.lineV.StrokeColor = theme.Color(theme.ColorNameDisabled)
	r.lineV.StrokeWidth = 1
	r.lineV.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

func (h *hoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	if !h.enabled {
		return
	}
	h.hovering = true
	h.mouse = ev.Position
	h.Refresh()
}
func (h *hoverOverlay) MouseIn(ev *desktop.MouseEvent) { h.hovering = true; h.Refresh() }
func (h *hoverOverlay) MouseOut()                      { h.hovering = false; h.Refresh() }

var _ desktop.Hoverable = (*hoverOverlay)(nil)
