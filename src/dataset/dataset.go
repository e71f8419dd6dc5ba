package dataset

import (
	"fmt"
	"math"
)

// DataRow holds the published figures for one season, in millions of USD.
// EqualShare is what the players would split under an NBA-style ~50% revenue
// share; Actual is the reported aggregate player salary.
type DataRow struct {
	Year       int     `json:"year"`
	Revenue    float64 `json:"revenue_musd"`
	EqualShare float64 `json:"equal_share_musd"`
	Actual     float64 `json:"actual_salary_musd"`
}

// Sample returns the seven-season table behind the original chart.
// Values estimated from the published bar heights, cross-referenced with
// public reporting (Bloomberg, Forbes, Sportico, Rodney Fort's Sports
// Business Data). A fresh slice is returned on every call so callers can
// never mutate the reference data.
func Sample() []DataRow {
	return []DataRow{
		{Year: 2019, Revenue: 95, EqualShare: 45, Actual: 12},
		{Year: 2020, Revenue: 120, EqualShare: 57, Actual: 12},
		{Year: 2021, Revenue: 142, EqualShare: 68, Actual: 17},
		{Year: 2022, Revenue: 170, EqualShare: 82, Actual: 18},
		{Year: 2023, Revenue: 193, EqualShare: 93, Actual: 18},
		{Year: 2024, Revenue: 220, EqualShare: 105, Actual: 18},
		{Year: 2025, Revenue: 295, EqualShare: 143, Actual: 18},
	}
}

// Validate checks the structural assumptions the renderers rely on:
// years strictly ascending and unique, all figures non-negative, and
// Actual <= EqualShare <= Revenue on every row. The first violation is
// reported; nil means the table is usable.
func Validate(rows []DataRow) error {
	for i, r := range rows {
		if i > 0 && rows[i-1].Year >= r.Year {
			return fmt.Errorf("row %d: year %d not ascending after %d", i, r.Year, rows[i-1].Year)
		}
		if r.Revenue < 0 || r.EqualShare < 0 || r.Actual < 0 {
			return fmt.Errorf("row %d (year %d): negative figure", i, r.Year)
		}
		if r.Actual > r.EqualShare {
			return fmt.Errorf("row %d (year %d): actual salary %.1f exceeds equal share %.1f", i, r.Year, r.Actual, r.EqualShare)
		}
		if r.EqualShare > r.Revenue {
			return fmt.Errorf("row %d (year %d): equal share %.1f exceeds revenue %.1f", i, r.Year, r.EqualShare, r.Revenue)
		}
	}
	return nil
}

// FilterYears returns the rows whose Year lies in [min,max], preserving
// order. An empty (or inverted) range yields an empty, non-nil slice so
// callers can still render valid empty charts.
func FilterYears(rows []DataRow, min, max int) []DataRow {
	out := make([]DataRow, 0, len(rows))
	for _, r := range rows {
		if r.Year >= min && r.Year <= max {
			out = append(out, r)
		}
	}
	return out
}

// YearBounds returns the inclusive year range covered by rows.
// ok is false for an empty table.
func YearBounds(rows []DataRow) (min, max int, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	min, max = rows[0].Year, rows[0].Year
	for _, r := range rows[1:] {
		if r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	return min, max, true
}

// PercentOfRevenue expresses value as a percentage of revenue.
// A zero (or negative) revenue has no defined percentage; 0 is returned so
// percent-mode charts degrade instead of propagating Inf/NaN.
func PercentOfRevenue(value, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return value / revenue * 100
}

// SharePercent is the derived table column: actual salary as a percentage
// of that season's revenue, rounded to one decimal place.
func SharePercent(r DataRow) float64 {
	return math.Round(PercentOfRevenue(r.Actual, r.Revenue)*10) / 10
}
