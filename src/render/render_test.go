package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/miguelartazos/wnba-revenue-viz/src/dataset"
	"github.com/miguelartazos/wnba-revenue-viz/src/geometry"
)

func TestChartRendersRequestedSize(t *testing.T) {
	desc := geometry.Build(dataset.Sample(), geometry.AllVisible(dataset.Sample()))
	img := Chart(desc, Config{Width: 640, Height: 480})
	if img == nil {
		t.Fatalf("nil image")
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Fatalf("size got %dx%d want 640x480", b.Dx(), b.Dy())
	}
}

func TestChartEmptyGeometryStillRenders(t *testing.T) {
	opts := geometry.AllVisible(dataset.Sample())
	opts.MinYear, opts.MaxYear = 1990, 1995
	desc := geometry.Build(dataset.Sample(), opts)
	img := Chart(desc, Config{Width: 400, Height: 300})
	if img == nil || img.Bounds().Dx() != 400 {
		t.Fatalf("empty geometry must still produce a valid image")
	}
}

func TestChartInvalidSizeFallsBackBlank(t *testing.T) {
	desc := geometry.Build(dataset.Sample(), geometry.AllVisible(dataset.Sample()))
	img := Chart(desc, Config{Width: 0, Height: 0})
	if img == nil {
		t.Fatalf("fallback image must not be nil")
	}
}

func TestChartWithAnnotationsThenStamp(t *testing.T) {
	rows := dataset.Sample()
	desc := geometry.Build(rows, geometry.AllVisible(rows))
	img := Chart(desc, Config{Width: 800, Height: 600, Title: StaticTitle, ShowAnnotations: true})
	if img == nil {
		t.Fatalf("annotated chart must render")
	}
	stamped := StampText(img, SourceFooter, color.RGBA{R: 136, G: 136, B: 136, A: 255})
	if stamped == nil || stamped.Bounds() != img.Bounds() {
		t.Fatalf("stamping must preserve image bounds")
	}
}

func TestStaticChartEncodes(t *testing.T) {
	img := StaticChart(dataset.Sample(), 1000, 750)
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty png")
	}
}

func TestStampTextNoopOnEmpty(t *testing.T) {
	img := Blank(50, 20)
	if got := StampText(img, "   ", color.Black); got != img {
		t.Fatalf("blank text should return input unchanged")
	}
	if got := StampText(img, "hello", color.Black); got == nil {
		t.Fatalf("stamped image must not be nil")
	}
}
