package main

import "testing"

// Hover mapping must pick centers that are strictly increasing and select
// the nearest slot across image/view scale combinations.
func TestSlotCenters_IncreasingAndSelectable(t *testing.T) {
	cases := []struct {
		n            int
		imgW, imgH   float32
		viewW, viewH float32
	}{
		{2, 800, 400, 800, 400},
		{7, 1000, 620, 1400, 620},
		{7, 1000, 620, 900, 700},
	}
	for _, tc := range cases {
		centers := xCentersSlotMode(tc.n, tc.imgW, tc.imgH, tc.viewW, tc.viewH)
		if len(centers) != tc.n {
			t.Fatalf("expected %d centers, got %d", tc.n, len(centers))
		}
		for i := 1; i < tc.n; i++ {
			if !(centers[i] > centers[i-1]) {
				t.Fatalf("centers not increasing at %d: %.2f <= %.2f", i, centers[i], centers[i-1])
			}
		}
		for i := 0; i < tc.n; i++ {
			if got := nearestIndex(centers, centers[i]); got != i {
				t.Fatalf("exact center selection mismatch: want %d got %d", i, got)
			}
			if i+1 < tc.n {
				mid := (centers[i] + centers[i+1]) / 2
				if got := nearestIndex(centers, mid-0.1); got != i {
					t.Fatalf("mid-left selection mismatch: want %d got %d", i, got)
				}
				if got := nearestIndex(centers, mid+0.1); got != i+1 {
					t.Fatalf("mid-right selection mismatch: want %d got %d", i+1, got)
				}
			}
		}
	}
}

func TestComputeContainRect_CentersImage(t *testing.T) {
	// wider view than image: horizontal letterboxing
	drawX, drawY, drawW, drawH, scale := computeContainRect(1000, 500, 2000, 500)
	if drawY != 0 || drawH != 500 {
		t.Fatalf("vertical fit expected: y=%v h=%v", drawY, drawH)
	}
	if scale != 1 || drawW != 1000 || drawX != 500 {
		t.Fatalf("expected centered 1:1 draw, got x=%v w=%v scale=%v", drawX, drawW, scale)
	}
	// degenerate input falls back to the view rect
	_, _, w, h, sc := computeContainRect(0, 0, 300, 200)
	if w != 300 || h != 200 || sc != 1 {
		t.Fatalf("degenerate input should fall back to view size")
	}
}

func TestSlotCentersEmpty(t *testing.T) {
	if got := xCentersSlotMode(0, 800, 400, 800, 400); got != nil {
		t.Fatalf("zero slots must yield nil centers, got %v", got)
	}
}
