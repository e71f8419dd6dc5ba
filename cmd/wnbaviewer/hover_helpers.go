package main

import (
	"math"

	"github.com/miguelartazos/wnba-revenue-viz/src/render"
)

// computeContainRect returns the rectangle an image of imgW x imgH occupies
// inside a view of viewW x viewH under ImageFillContain, plus the scale.
func computeContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return
}

// xCentersSlotMode computes, in overlay coordinates, the pixel center of
// each of the n year slots of a rendered chart image. It mirrors the slot
// domain used by the render package (xDomain: -0.9 .. n-0.1) and the fixed
// plot paddings.
func xCentersSlotMode(n int, imgW, imgH, viewW, viewH float32) []float32 {
	if n <= 0 {
		return nil
	}
	drawX, _, _, _, scale := computeContainRect(imgW, imgH, viewW, viewH)
	plotWImg := imgW - float32(render.PadLeft) - float32(render.PadRight)
	if plotWImg < 1 {
		plotWImg = imgW
	}
	xMin := float32(-0.9)
	xMax := float32(n) - 0.1
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		fx := (float32(i) - xMin) / (xMax - xMin)
		pxImg := float32(render.PadLeft) + plotWImg*fx
		out[i] = drawX + pxImg*scale
	}
	return out
}

// nearestIndex picks the slot whose center is closest to mouseX.
func nearestIndex(centers []float32, mouseX float32) int {
	best := 0
	bestD := float32(math.MaxFloat32)
	for i, c := range centers {
		d := float32(math.Abs(float64(mouseX - c)))
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}
