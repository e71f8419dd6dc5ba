// Package uihelpers holds the viewer's pure layout and formatting rules so
// they can be unit-tested without a running Fyne process.
package uihelpers

import (
	"fmt"
	"path/filepath"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
	"github.com/miguelartazos/wnba-revenue-viz/src/geometry"
)

// ComputeChartDimensions applies the width/height clamp rules used for the
// interactive chart. Input: desired raw width (e.g. canvas width). Returns
// clamped width and height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 700 {
		w = 700
	}
	h := int(float32(w) * 0.62)
	if h < 380 {
		h = 380
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

// FormatMoney renders a millions-of-USD figure for tooltips and tables.
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.0fM", v)
}

// FormatPercent renders a share percentage at one decimal place.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// HoverLines builds the tooltip text for one year under the current view
// options: the year first, then one line per visible series. In percent
// mode values are expressed against that year's revenue and the revenue
// series itself is omitted (it would always read 100%).
func HoverLines(r dataset.DataRow, opts geometry.ViewOptions) []string {
	lines := []string{fmt.Sprintf("%d", r.Year)}
	if opts.PercentMode {
		if opts.ShowEqualShare {
			lines = append(lines, fmt.Sprintf("50%% Share: %s of revenue", FormatPercent(dataset.PercentOfRevenue(r.EqualShare, r.Revenue))))
		}
		if opts.ShowActual {
			lines = append(lines, fmt.Sprintf("Actual salary: %s of revenue", FormatPercent(dataset.PercentOfRevenue(r.Actual, r.Revenue))))
		}
		return lines
	}
	if opts.ShowRevenue {
		lines = append(lines, fmt.Sprintf("Revenue: %s", FormatMoney(r.Revenue)))
	}
	if opts.ShowEqualShare {
		lines = append(lines, fmt.Sprintf("50%% Share: %s", FormatMoney(r.EqualShare)))
	}
	if opts.ShowActual {
		lines = append(lines, fmt.Sprintf("Actual salary: %s", FormatMoney(r.Actual)))
	}
	return lines
}

// TruncatePath shortens a file path for display in the top bar.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
