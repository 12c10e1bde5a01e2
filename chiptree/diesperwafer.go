package chiptree

import "github.com/chipletpart/chipletpart/techlib"

// DiesPerWafer packs rectangular dies of dieWidthMM x dieHeightMM into the
// wafer's usable area (diameter minus edge exclusion), with a dicing lane
// of w.DicingDistanceMM between neighboring dies.
//
// When w.WaferFillGrid is true, the usable area is treated as a full
// square grid (no circular trim) — a coarse-but-fast estimate used by
// some gross-die-per-wafer conventions. Otherwise each candidate die's
// farthest corner from wafer center must lie within the usable radius.
func DiesPerWafer(w *techlib.WaferProcess, dieWidthMM, dieHeightMM float64) int {
	usable := w.UsableDiameterMM()
	if usable <= 0 || dieWidthMM <= 0 || dieHeightMM <= 0 {
		return 0
	}

	pitchX := dieWidthMM + w.DicingDistanceMM
	pitchY := dieHeightMM + w.DicingDistanceMM

	nx := int(usable / pitchX)
	ny := int(usable / pitchY)
	if nx <= 0 || ny <= 0 {
		return 0
	}

	if w.WaferFillGrid {
		return nx * ny
	}

	radius := usable / 2
	count := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			cx := -radius + pitchX*(float64(i)+0.5)
			cy := -radius + pitchY*(float64(j)+0.5)
			if fitsInCircle(cx, cy, dieWidthMM/2, dieHeightMM/2, radius) {
				count++
			}
		}
	}
	return count
}

// fitsInCircle reports whether the die rectangle centered at (cx,cy) with
// half-extents (hw,hh) lies entirely within the circle of the given
// radius, checked via its farthest corner from the origin.
func fitsInCircle(cx, cy, hw, hh, radius float64) bool {
	farX := cx + sign(cx)*hw
	farY := cy + sign(cy)*hh
	return farX*farX+farY*farY <= radius*radius
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// WaferAmortizedCostPerDie divides a whole-wafer processing price across
// the dies a wafer yields (process yield included), for callers that
// price fabrication per wafer rather than per mm².
func WaferAmortizedCostPerDie(w *techlib.WaferProcess, waferPriceUSD, dieWidthMM, dieHeightMM float64) float64 {
	n := DiesPerWafer(w, dieWidthMM, dieHeightMM)
	if n == 0 {
		return 0
	}
	goodDies := float64(n) * w.ProcessYield
	if goodDies <= 0 {
		return 0
	}
	return waferPriceUSD / goodDies
}
