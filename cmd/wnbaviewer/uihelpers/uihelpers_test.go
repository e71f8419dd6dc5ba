package uihelpers

import (
	"strings"
	"testing"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
	"github.com/miguelartazos/wnba-revenue-viz/src/geometry"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 700},
		{699, 700},
		{700, 700},
		{1400, 1400},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 380 || h > 640 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestHoverLinesAbsolute(t *testing.T) {
	r := dataset.DataRow{Year: 2025, Revenue: 295, EqualShare: 143, Actual: 18}
	opts := geometry.ViewOptions{ShowRevenue: true, ShowEqualShare: true, ShowActual: true}
	lines := HoverLines(r, opts)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "2025" {
		t.Fatalf("first line should be the year, got %q", lines[0])
	}
	if lines[1] != "Revenue: $295M" || lines[3] != "Actual salary: $18M" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestHoverLinesPercentOmitsRevenue(t *testing.T) {
	r := dataset.DataRow{Year: 2019, Revenue: 95, EqualShare: 45, Actual: 12}
	opts := geometry.ViewOptions{ShowRevenue: true, ShowEqualShare: true, ShowActual: true, PercentMode: true}
	lines := HoverLines(r, opts)
	for _, l := range lines {
		if strings.HasPrefix(l, "Revenue:") {
			t.Fatalf("revenue line must be omitted in percent mode: %v", lines)
		}
	}
	// 12/95*100 = 12.631... -> 12.6
	found := false
	for _, l := range lines {
		if l == "Actual salary: 12.6% of revenue" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected one-decimal percent line, got %v", lines)
	}
}

func TestHoverLinesHiddenSeries(t *testing.T) {
	r := dataset.DataRow{Year: 2020, Revenue: 120, EqualShare: 57, Actual: 12}
	opts := geometry.ViewOptions{ShowActual: true}
	lines := HoverLines(r, opts)
	if len(lines) != 2 || lines[1] != "Actual salary: $12M" {
		t.Fatalf("unexpected lines with only actual visible: %v", lines)
	}
}

func TestTruncatePath(t *testing.T) {
	if got := TruncatePath("/short", 60); got != "/short" {
		t.Fatalf("short paths must pass through, got %q", got)
	}
	long := "/very/long/directory/structure/with/many/levels/original_chart.png"
	got := TruncatePath(long, 30)
	if len(got) > 34 || !strings.Contains(got, "original_chart.png") {
		t.Fatalf("bad truncation: %q", got)
	}
}
