// Package render turns a geometry.Description into a raster chart image.
// It is the single rasterization path: the static recreation and the
// interactive viewer both feed geometry through Chart and differ only in
// configuration (annotations, title, footer).
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
	"github.com/miguelartazos/wnba-revenue-viz/src/geometry"
)

// Config controls one rasterization pass.
type Config struct {
	Width, Height   int
	Title           string
	ShowAnnotations bool
}

// Plot paddings in pixels. The crosshair overlay in the viewer mirrors
// PadLeft/PadRight to map mouse positions back to year slots.
const (
	PadLeft   = 70
	PadRight  = 20
	PadTop    = 54
	PadBottom = 46
)

// SourceFooter is the citation line from the original chart.
const SourceFooter = "Sources: Bloomberg, Forbes, Sportico, Rodney Fort's Sports Business Data"

// StaticTitle is the original chart's small-caps style heading.
const StaticTitle = "ANNUAL REVENUE"

// xDomain returns the slot-unit range mapped onto the plot width. The left
// margin leaves room for annotation text placed at negative slot positions.
func xDomain(slots int) (float64, float64) {
	if slots < 1 {
		slots = 1
	}
	return -0.9, float64(slots) - 0.1
}

type plotArea struct {
	w, h       int
	xMin, xMax float64
	yMax       float64
}

func (p plotArea) x(v float64) int {
	plotW := float64(p.w - PadLeft - PadRight)
	return PadLeft + int(math.Round((v-p.xMin)/(p.xMax-p.xMin)*plotW))
}

func (p plotArea) y(v float64) int {
	plotH := float64(p.h - PadTop - PadBottom)
	return PadTop + int(math.Round((1-v/p.yMax)*plotH))
}

// Chart rasterizes desc. It never fails: render errors are logged and a
// blank image of the requested size is returned so the UI still updates.
func Chart(desc geometry.Description, cfg Config) image.Image {
	img, err := drawChart(desc, cfg)
	if err != nil {
		dataset.Warnf("chart render error: %v; showing blank fallback", err)
		return Blank(cfg.Width, cfg.Height)
	}
	return img
}

func drawChart(desc geometry.Description, cfg Config) (image.Image, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", cfg.Width, cfg.Height)
	}
	r, err := chart.PNG(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	r.SetFont(f)

	yMax := desc.YMax
	if yMax <= 0 {
		yMax = 1
	}
	p := plotArea{w: cfg.Width, h: cfg.Height, yMax: yMax}
	p.xMin, p.xMax = xDomain(len(desc.XLabels))

	// White canvas.
	fillRect(r, 0, 0, cfg.Width, cfg.Height, drawing.ColorWhite)

	// Gridlines and y tick labels. No tick marks: labels float beside the
	// muted gridlines, as in the original.
	r.SetFontSize(11)
	for _, t := range desc.Ticks {
		y := p.y(t.Value)
		r.SetStrokeColor(drawing.ColorFromHex(geometry.ColorGridline))
		r.SetStrokeWidth(1)
		r.MoveTo(PadLeft, y)
		r.LineTo(cfg.Width-PadRight, y)
		r.Stroke()
		if t.Label == "" {
			continue
		}
		r.SetFontColor(drawing.ColorFromHex(geometry.ColorAxisText))
		box := r.MeasureText(t.Label)
		r.Text(t.Label, PadLeft-8-box.Width(), y+box.Height()/2)
	}

	// Bars, widest z first so narrower series nest in front.
	bars := make([]geometry.BarSpec, len(desc.Bars))
	copy(bars, desc.Bars)
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Z < bars[j].Z })
	base := p.y(0)
	for _, b := range bars {
		x0 := p.x(b.X)
		x1 := p.x(b.X + b.Width)
		y0 := p.y(b.Height)
		fillRect(r, x0, y0, x1-x0, base-y0, drawing.ColorFromHex(b.Color))
	}

	// Bottom spine and year labels.
	r.SetStrokeColor(drawing.ColorFromHex(geometry.ColorSpine))
	r.SetStrokeWidth(1)
	r.MoveTo(PadLeft, base)
	r.LineTo(cfg.Width-PadRight, base)
	r.Stroke()
	r.SetFontSize(12)
	r.SetFontColor(drawing.ColorFromHex("333333"))
	for i, label := range desc.XLabels {
		box := r.MeasureText(label)
		r.Text(label, p.x(float64(i))-box.Width()/2, base+8+box.Height())
	}

	// Top-tick callout ("$300 million") drawn above the axis instead of a
	// regular tick label.
	if desc.Callout != "" {
		r.SetFontSize(11)
		r.SetFontColor(drawing.ColorFromHex(geometry.ColorAxisText))
		r.Text(desc.Callout, p.x(desc.CalloutAt.X), p.y(desc.CalloutAt.Y))
	}

	if cfg.Title != "" {
		r.SetFontSize(14)
		r.SetFontColor(drawing.ColorFromHex("333333"))
		r.Text(cfg.Title, p.x(-0.8), PadTop-12)
	}

	if cfg.ShowAnnotations {
		for _, a := range desc.Annotations {
			drawAnnotation(r, p, a)
		}
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("save chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

func fillRect(r chart.Renderer, x, y, w, h int, c drawing.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.SetFillColor(c)
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.Close()
	r.Fill()
}

// drawAnnotation renders one callout: text block, synthesized underlines,
// and the curved arrow with a small open head at the tip.
func drawAnnotation(r chart.Renderer, p plotArea, a geometry.AnnotationSpec) {
	col := drawing.ColorFromHex(a.Color)

	r.SetFontSize(10.5)
	r.SetFontColor(col)
	const lineSpacingUnits = 14.0
	for i, line := range a.Lines {
		x := p.x(a.TextAnchor.X)
		y := p.y(a.TextAnchor.Y - lineSpacingUnits*float64(i))
		r.Text(line, x, y)
	}

	r.SetStrokeColor(col)
	r.SetStrokeWidth(1)
	for _, u := range a.Underlines {
		r.MoveTo(p.x(u.From.X), p.y(u.From.Y))
		r.LineTo(p.x(u.To.X), p.y(u.To.Y))
		r.Stroke()
	}

	// Curved arrow: quadratic with a control point offset perpendicular to
	// the chord, proportional to the curvature value.
	fx, fy := float64(p.x(a.ArrowFrom.X)), float64(p.y(a.ArrowFrom.Y))
	tx, ty := float64(p.x(a.ArrowTip.X)), float64(p.y(a.ArrowTip.Y))
	dx, dy := tx-fx, ty-fy
	cx := (fx+tx)/2 - a.Curvature*dy
	cy := (fy+ty)/2 + a.Curvature*dx
	r.SetStrokeWidth(1.2)
	r.MoveTo(int(fx), int(fy))
	r.QuadCurveTo(int(cx), int(cy), int(tx), int(ty))
	r.Stroke()

	// Arrow head along the incoming tangent (control point -> tip).
	hx, hy := tx-cx, ty-cy
	n := math.Hypot(hx, hy)
	if n == 0 {
		return
	}
	hx, hy = hx/n, hy/n
	const headLen = 8.0
	for _, ang := range []float64{math.Pi * 5 / 6, -math.Pi * 5 / 6} {
		sin, cos := math.Sin(ang), math.Cos(ang)
		ex := tx + headLen*(hx*cos-hy*sin)
		ey := ty + headLen*(hx*sin+hy*cos)
		r.MoveTo(int(tx), int(ty))
		r.LineTo(int(ex), int(ey))
		r.Stroke()
	}
}

// StaticChart renders the full-fidelity recreation of the original: all
// series visible, absolute values, annotations, title, and source footer.
func StaticChart(rows []dataset.DataRow, width, height int) image.Image {
	desc := geometry.Build(rows, geometry.AllVisible(rows))
	img := Chart(desc, Config{Width: width, Height: height, Title: StaticTitle, ShowAnnotations: true})
	return StampText(img, SourceFooter, color.RGBA{R: 136, G: 136, B: 136, A: 255})
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// HexColor converts a 6-digit hex string (as used by geometry series
// colors) into an image color, for UI elements like legend swatches.
func HexColor(hex string) color.RGBA {
	c := drawing.ColorFromHex(hex)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Blank returns a plain white image, used as a fallback when rendering
// fails so canvases still visibly update.
func Blank(w, h int) image.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
