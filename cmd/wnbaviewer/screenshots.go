package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
	"github.com/miguelartazos/wnba-revenue-viz/src/geometry"
	"github.com/miguelartazos/wnba-revenue-viz/src/render"
)

// RunScreenshotsMode renders the static recreation plus representative
// interactive views and writes them as PNGs under outDir. It runs headlessly
// without creating a UI window.
func RunScreenshotsMode(outDir string, rows []dataset.DataRow) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	full := geometry.AllVisible(rows)
	pct := full
	pct.PercentMode = true
	salaryOnly := full
	salaryOnly.ShowRevenue = false
	salaryOnly.ShowEqualShare = false

	toRender := []struct {
		name string
		img  image.Image
	}{
		{"static_recreation.png", render.StaticChart(rows, 1000, 750)},
		{"interactive_default.png", render.Chart(geometry.Build(rows, full), render.Config{Width: 1000, Height: 620})},
		{"interactive_percent.png", render.Chart(geometry.Build(rows, pct), render.Config{Width: 1000, Height: 620})},
		{"interactive_salary_only.png", render.Chart(geometry.Build(rows, salaryOnly), render.Config{Width: 1000, Height: 620})},
	}

	for _, item := range toRender {
		if item.img == nil {
			continue
		}
		var buf bytes.Buffer
		if err := render.WritePNG(&buf, item.img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		dataset.Infof("wrote %s", outPath)
	}
	return nil
}
