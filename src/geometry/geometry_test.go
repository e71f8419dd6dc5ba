package geometry

import (
	"math"
	"reflect"
	"testing"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
)

const eps = 1e-9

func fullOpts() ViewOptions {
	return ViewOptions{
		MinYear: 2019, MaxYear: 2025,
		ShowRevenue: true, ShowEqualShare: true, ShowActual: true,
	}
}

func barsFor(d Description, year int) []BarSpec {
	var out []BarSpec
	for _, b := range d.Bars {
		if b.Year == year {
			out = append(out, b)
		}
	}
	return out
}

func TestBuildAbsoluteHeights2025(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	bars := barsFor(d, 2025)
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars for 2025, got %d", len(bars))
	}
	want := map[Series]float64{SeriesRevenue: 295, SeriesEqualShare: 143, SeriesActual: 18}
	for _, b := range bars {
		if b.Height != want[b.Series] {
			t.Fatalf("2025 %s height: got %v want %v", b.Series, b.Height, want[b.Series])
		}
	}
}

func TestBuildSharedLeftEdgeAndWidths(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	bars := barsFor(d, 2019)
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	// All bars of a slot are left-aligned, not center-aligned.
	for _, b := range bars[1:] {
		if math.Abs(b.X-bars[0].X) > eps {
			t.Fatalf("left edges differ: %v vs %v", b.X, bars[0].X)
		}
	}
	widths := map[Series]float64{SeriesRevenue: WidthRevenue, SeriesEqualShare: WidthEqualShare, SeriesActual: WidthActual}
	for _, b := range bars {
		if b.Width != widths[b.Series] {
			t.Fatalf("%s width: got %v want %v", b.Series, b.Width, widths[b.Series])
		}
	}
}

func TestBuildZOrderFixed(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	// Bars must come out in ascending z per slot: revenue behind, equal
	// share in front of it, actual in front of both.
	for y := 2019; y <= 2025; y++ {
		bars := barsFor(d, y)
		for i := 1; i < len(bars); i++ {
			if bars[i].Z <= bars[i-1].Z {
				t.Fatalf("year %d: z not ascending: %v then %v", y, bars[i-1].Z, bars[i].Z)
			}
		}
	}
}

func TestBuildZOrderSurvivesHiddenSeries(t *testing.T) {
	opts := fullOpts()
	opts.ShowEqualShare = false
	d := Build(dataset.Sample(), opts)
	for _, b := range d.Bars {
		if b.Series == SeriesEqualShare {
			t.Fatalf("hidden series present in output")
		}
	}
	bars := barsFor(d, 2021)
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Series != SeriesRevenue || bars[0].Z != 1 {
		t.Fatalf("revenue must keep z=1, got %+v", bars[0])
	}
	if bars[1].Series != SeriesActual || bars[1].Z != 3 {
		t.Fatalf("actual must keep z=3, got %+v", bars[1])
	}
}

func TestBuildPercentMode(t *testing.T) {
	opts := fullOpts()
	opts.PercentMode = true
	d := Build(dataset.Sample(), opts)
	if !d.PercentMode {
		t.Fatalf("description must carry percent mode")
	}
	rows := dataset.Sample()
	byYear := map[int]dataset.DataRow{}
	for _, r := range rows {
		byYear[r.Year] = r
	}
	for _, b := range d.Bars {
		if b.Series == SeriesRevenue {
			t.Fatalf("revenue bars must be dropped in percent mode")
		}
		r := byYear[b.Year]
		want := b.Value / r.Revenue * 100
		if math.Abs(b.Height-want) > 1e-9 {
			t.Fatalf("year %d %s: got %v want %v", b.Year, b.Series, b.Height, want)
		}
	}
	if d.YMax != 100 {
		t.Fatalf("percent axis max: got %v want 100", d.YMax)
	}
}

func TestBuildPercentModeZeroRevenue(t *testing.T) {
	rows := []dataset.DataRow{{Year: 2019, Revenue: 0, EqualShare: 0, Actual: 0}}
	opts := ViewOptions{MinYear: 2019, MaxYear: 2019, ShowEqualShare: true, ShowActual: true, PercentMode: true}
	d := Build(rows, opts)
	for _, b := range d.Bars {
		if b.Height != 0 {
			t.Fatalf("zero-revenue percent must be 0, got %v", b.Height)
		}
	}
}

func TestBuildEmptyRange(t *testing.T) {
	opts := fullOpts()
	opts.MinYear, opts.MaxYear = 1990, 1995
	d := Build(dataset.Sample(), opts)
	if len(d.Bars) != 0 {
		t.Fatalf("expected zero bars, got %d", len(d.Bars))
	}
	if len(d.Annotations) != 0 {
		t.Fatalf("expected zero annotations, got %d", len(d.Annotations))
	}
	if len(d.Ticks) == 0 || d.YMax <= 0 {
		t.Fatalf("empty range must still yield a valid axis: %+v", d)
	}
}

func TestBuildDeterministic(t *testing.T) {
	opts := fullOpts()
	opts.PercentMode = true
	a := Build(dataset.Sample(), opts)
	b := Build(dataset.Sample(), opts)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("builder output differs between identical invocations")
	}
}

func TestTicksAbsoluteWithCallout(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	want := []float64{50, 100, 150, 200, 250, 300}
	if len(d.Ticks) != len(want) {
		t.Fatalf("tick count: got %d want %d (%+v)", len(d.Ticks), len(want), d.Ticks)
	}
	for i, v := range want {
		if d.Ticks[i].Value != v {
			t.Fatalf("tick %d: got %v want %v", i, d.Ticks[i].Value, v)
		}
	}
	// The top tick carries no axis label; it is announced by the callout.
	top := d.Ticks[len(d.Ticks)-1]
	if top.Label != "" {
		t.Fatalf("top tick should have empty label, got %q", top.Label)
	}
	if d.Callout != "$300 million" {
		t.Fatalf("callout: got %q", d.Callout)
	}
	if d.Ticks[0].Label != "50 mil." {
		t.Fatalf("first tick label: got %q", d.Ticks[0].Label)
	}
	if d.YMax <= 300 {
		t.Fatalf("y max must leave headroom above top tick, got %v", d.YMax)
	}
}

func TestAnnotationsFollowVisibility(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	if len(d.Annotations) != 3 {
		t.Fatalf("expected 3 annotations, got %d", len(d.Annotations))
	}
	opts := fullOpts()
	opts.ShowActual = false
	d = Build(dataset.Sample(), opts)
	if len(d.Annotations) != 2 {
		t.Fatalf("expected 2 annotations with actual hidden, got %d", len(d.Annotations))
	}
	for _, a := range d.Annotations {
		if a.Series == SeriesActual {
			t.Fatalf("annotation for hidden series present")
		}
	}
}

func TestAnnotationUnderlinesDeriveFromAnchor(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	for _, a := range d.Annotations {
		if len(a.Underlines) != len(a.Lines) {
			t.Fatalf("%s: %d underlines for %d lines", a.Series, len(a.Underlines), len(a.Lines))
		}
		for i, u := range a.Underlines {
			if math.Abs(u.From.X-a.TextAnchor.X) > eps {
				t.Fatalf("%s underline %d does not start at text anchor x", a.Series, i)
			}
			wantY := a.TextAnchor.Y - annLineSpacing*float64(i) - annUnderlineGap
			if math.Abs(u.From.Y-wantY) > eps || math.Abs(u.To.Y-wantY) > eps {
				t.Fatalf("%s underline %d y: got %v want %v", a.Series, i, u.From.Y, wantY)
			}
			if u.To.X <= u.From.X {
				t.Fatalf("%s underline %d has non-positive length", a.Series, i)
			}
		}
	}
}

func TestAnnotationCurvatureAlternates(t *testing.T) {
	d := Build(dataset.Sample(), fullOpts())
	if len(d.Annotations) != 3 {
		t.Fatalf("expected 3 annotations, got %d", len(d.Annotations))
	}
	if !(d.Annotations[0].Curvature < 0) {
		t.Fatalf("first annotation should bend negative, got %v", d.Annotations[0].Curvature)
	}
	if !(d.Annotations[1].Curvature > 0) || !(d.Annotations[2].Curvature > 0) {
		t.Fatalf("later annotations should bend positive: %v, %v",
			d.Annotations[1].Curvature, d.Annotations[2].Curvature)
	}
}
