// Package geometry maps the revenue dataset and a set of view options to a
// renderer-agnostic chart description: bar rectangles in slot/data
// coordinates, axis ticks, and annotation shapes. It performs no I/O and
// imports no rendering library; both the static and the interactive
// renderer consume its output.
package geometry

import (
	"fmt"
	"math"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
)

// Series identifies one of the three bar series, in fixed draw order.
type Series int

const (
	SeriesRevenue Series = iota
	SeriesEqualShare
	SeriesActual
)

func (s Series) String() string {
	switch s {
	case SeriesRevenue:
		return "WNBA Revenue"
	case SeriesEqualShare:
		return "50% Share (NBA-equivalent)"
	case SeriesActual:
		return "Actual Player Salary"
	}
	return "unknown"
}

// Colors matched from the original chart.
const (
	ColorRevenue    = "d4d4d4"
	ColorEqualShare = "9cb4d8"
	ColorActual     = "4a6fa5"
	ColorAxisText   = "555555"
	ColorGridline   = "e8e8e8"
	ColorSpine      = "999999"
)

func (s Series) Color() string {
	switch s {
	case SeriesEqualShare:
		return ColorEqualShare
	case SeriesActual:
		return ColorActual
	default:
		return ColorRevenue
	}
}

// Bar layout in slot units: one unit of category spacing per year, all
// three bars sharing a left edge inside the slot. The widest series is
// drawn first so the narrower ones nest in front of it.
const (
	slotLeftOffset  = -0.15
	WidthRevenue    = 0.55
	WidthEqualShare = 0.40
	WidthActual     = 0.20
)

// ViewOptions is rebuilt from the controls on every interaction and
// threaded through Build explicitly; nothing in this package holds state.
type ViewOptions struct {
	MinYear, MaxYear int
	ShowRevenue      bool
	ShowEqualShare   bool
	ShowActual       bool
	PercentMode      bool
}

// AllVisible returns the options used by the static recreation: full year
// range, every series shown, absolute values.
func AllVisible(rows []dataset.DataRow) ViewOptions {
	min, max, _ := dataset.YearBounds(rows)
	return ViewOptions{MinYear: min, MaxYear: max, ShowRevenue: true, ShowEqualShare: true, ShowActual: true}
}

// Visible reports whether series s is enabled in o.
func (o ViewOptions) Visible(s Series) bool {
	switch s {
	case SeriesRevenue:
		return o.ShowRevenue
	case SeriesEqualShare:
		return o.ShowEqualShare
	case SeriesActual:
		return o.ShowActual
	}
	return false
}

// BarSpec is one rectangle in slot/data space. X is the bar's left edge in
// slot units, Height the value on the y axis (absolute or percent). Z is the
// fixed draw order: revenue 1, equal share 2, actual 3, independent of which
// series are hidden.
type BarSpec struct {
	Series Series
	Year   int
	X      float64
	Width  float64
	Height float64
	Color  string
	Z      int
	Value  float64
}

// TickSpec is a horizontal gridline/label pair on the y axis. An empty
// label means the gridline is drawn but the value is announced elsewhere
// (the top-tick callout).
type TickSpec struct {
	Value float64
	Label string
}

// Point is a position in chart data space (x in slot units, y in values).
type Point struct {
	X, Y float64
}

// Segment is a straight line in data space, used for synthesized text
// underlines: the rendering surface has no underline primitive for this
// font treatment, so underlines are separate thin strokes placed just
// below each text baseline.
type Segment struct {
	From, To Point
}

// AnnotationSpec describes one curved-arrow callout: the text block, the
// arrow from near the text to a bar, and the underline segments derived
// from the text anchor.
type AnnotationSpec struct {
	Series     Series
	Lines      []string
	TextAnchor Point // baseline-left of the first text line
	ArrowFrom  Point
	ArrowTip   Point
	Curvature  float64 // arc bend; sign alternates between annotations
	Color      string
	Underlines []Segment
}

// Description is the full renderer-agnostic output of Build.
type Description struct {
	Bars        []BarSpec
	Ticks       []TickSpec
	Annotations []AnnotationSpec
	XLabels     []string // one per slot, in slot order
	YMax        float64
	Callout     string // e.g. "$300 million"; empty when no callout applies
	CalloutAt   Point
	PercentMode bool
}

// Vertical layout of annotation text in data units: line spacing and the
// gap between a baseline and its underline. These track the original
// chart's hand-placed coordinates.
const (
	annLineSpacing  = 14.0
	annUnderlineGap = 3.0
)

// annLayout is the aesthetic tuning table for the three callouts. The
// coordinates were matched against the reference image by eye; there is no
// formula behind them, so they live here as configuration rather than code.
type annLayout struct {
	series     Series
	lines      []string
	textAnchor Point
	arrowFrom  Point
	arrowTip   Point
	curvature  float64
	color      string
	underlineW []float64 // underline length per text line, in slot units
}

var annLayouts = []annLayout{
	{
		series:     SeriesRevenue,
		lines:      []string{"How much money the W.N.B.A. makes"},
		textAnchor: Point{X: 3.0, Y: 300},
		arrowFrom:  Point{X: 5.3, Y: 290},
		arrowTip:   Point{X: 5.3, Y: 230},
		curvature:  -0.3,
		color:      "333333",
		underlineW: []float64{3.35},
	},
	{
		series:     SeriesEqualShare,
		lines:      []string{"Money the players would share,", "if they were paid like N.B.A. players"},
		textAnchor: Point{X: 1.2, Y: 197},
		arrowFrom:  Point{X: 2.8, Y: 195},
		arrowTip:   Point{X: 1.5, Y: 75},
		curvature:  0.4,
		color:      "333333",
		underlineW: []float64{4.05, 4.3},
	},
	{
		series:     SeriesActual,
		lines:      []string{"Money that W.N.B.A.", "players actually make"},
		textAnchor: Point{X: -0.3, Y: 115},
		arrowFrom:  Point{X: 0.5, Y: 100},
		arrowTip:   Point{X: 0.0, Y: 20},
		curvature:  0.3,
		color:      "b37540",
		underlineW: []float64{2.4, 2.45},
	},
}

// underlinesFor derives the underline segments from a text anchor so that
// moving the text block moves its underlines with it.
func underlinesFor(anchor Point, widths []float64) []Segment {
	segs := make([]Segment, 0, len(widths))
	for i, w := range widths {
		baseY := anchor.Y - annLineSpacing*float64(i)
		y := baseY - annUnderlineGap
		segs = append(segs, Segment{
			From: Point{X: anchor.X, Y: y},
			To:   Point{X: anchor.X + w, Y: y},
		})
	}
	return segs
}

// barHeight computes the drawn height of value for a row, honoring percent
// mode (with the zero-revenue guard in dataset.PercentOfRevenue).
func barHeight(value float64, r dataset.DataRow, percent bool) float64 {
	if percent {
		return dataset.PercentOfRevenue(value, r.Revenue)
	}
	return value
}

// Build is the geometry builder: a pure mapping from (rows, opts) to a
// Description. Identical inputs always produce identical output.
func Build(rows []dataset.DataRow, opts ViewOptions) Description {
	visible := dataset.FilterYears(rows, opts.MinYear, opts.MaxYear)

	desc := Description{
		Bars:        []BarSpec{},
		Annotations: []AnnotationSpec{},
		XLabels:     make([]string, 0, len(visible)),
		PercentMode: opts.PercentMode,
	}

	maxVal := 0.0
	for i, r := range visible {
		desc.XLabels = append(desc.XLabels, fmt.Sprintf("%d", r.Year))
		left := float64(i) + slotLeftOffset
		type layer struct {
			series Series
			width  float64
			value  float64
			z      int
		}
		layers := []layer{
			{SeriesRevenue, WidthRevenue, r.Revenue, 1},
			{SeriesEqualShare, WidthEqualShare, r.EqualShare, 2},
			{SeriesActual, WidthActual, r.Actual, 3},
		}
		for _, l := range layers {
			if !opts.Visible(l.series) {
				continue
			}
			if opts.PercentMode && l.series == SeriesRevenue {
				// Revenue as a percent of itself is a constant 100% wall; the
				// original drops it in this mode.
				continue
			}
			h := barHeight(l.value, r, opts.PercentMode)
			if h > maxVal {
				maxVal = h
			}
			desc.Bars = append(desc.Bars, BarSpec{
				Series: l.series,
				Year:   r.Year,
				X:      left,
				Width:  l.width,
				Height: h,
				Color:  l.series.Color(),
				Z:      l.z,
				Value:  l.value,
			})
		}
	}

	desc.Ticks, desc.YMax, desc.Callout, desc.CalloutAt = buildTicks(maxVal, opts.PercentMode)

	if len(visible) > 0 {
		for _, a := range annLayouts {
			if !opts.Visible(a.series) {
				continue
			}
			if opts.PercentMode {
				// The callouts describe absolute dollar bars.
				continue
			}
			desc.Annotations = append(desc.Annotations, AnnotationSpec{
				Series:     a.series,
				Lines:      a.lines,
				TextAnchor: a.textAnchor,
				ArrowFrom:  a.arrowFrom,
				ArrowTip:   a.arrowTip,
				Curvature:  a.curvature,
				Color:      a.color,
				Underlines: underlinesFor(a.textAnchor, a.underlineW),
			})
		}
	}
	return desc
}

// buildTicks produces the y-axis gridlines. Absolute mode uses round
// 50-step values up to the data max (50..300 for the sample data), with the
// top tick's label blanked in favor of a standalone "$N million" callout —
// replicating the original chart's styling. Percent mode clamps to a fixed
// 0..100 axis with 25-point steps.
func buildTicks(maxVal float64, percent bool) ([]TickSpec, float64, string, Point) {
	if percent {
		ticks := []TickSpec{
			{Value: 25, Label: "25%"},
			{Value: 50, Label: "50%"},
			{Value: 75, Label: "75%"},
			{Value: 100, Label: "100%"},
		}
		return ticks, 100, "", Point{}
	}
	step := 50.0
	top := math.Ceil(maxVal/step) * step
	if top < step {
		top = step
	}
	ticks := make([]TickSpec, 0, int(top/step))
	for v := step; v <= top+step/2; v += step {
		label := fmt.Sprintf("%.0f mil.", v)
		if v == top {
			label = "" // replaced by the callout
		}
		ticks = append(ticks, TickSpec{Value: v, Label: label})
	}
	callout := fmt.Sprintf("$%.0f million", top)
	// Headroom above the top gridline, matching the original's 0..320 frame.
	yMax := top + 20
	return ticks, yMax, callout, Point{X: -0.8, Y: top + 5}
}
